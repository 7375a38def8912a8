package category

type Key string

const (
	KeyRestaurant Key = "restaurant"
	KeyFlight     Key = "flight"
	KeyHotel      Key = "hotel"
	KeyMuseum     Key = "museum"
	KeyAttraction Key = "attraction"
	KeyTrain      Key = "train"
	KeyPlace      Key = "place"
)

// Config is the immutable description of one semantic category.
type Config struct {
	Key      Key
	Labels   map[string]string // locale -> display label
	Icon     string
	Gradient [2]string
	Keywords []string
}

// Registry holds the seven fixed categories. Keyword lists are checked
// in declaration order and use raw substring matching; tokens like
// "bar " keep their trailing space as a cheap word boundary.
type Registry struct {
	configs map[Key]Config
	order   []Key // display order
}

// heuristicOrder is the category check order for keyword
// classification. First match wins, so the order is part of the
// contract and must not be rearranged.
var heuristicOrder = []Key{KeyRestaurant, KeyMuseum, KeyAttraction, KeyTrain}

func NewRegistry() *Registry {
	configs := []Config{
		{
			Key:      KeyRestaurant,
			Labels:   map[string]string{"en": "Restaurant", "it": "Ristorante"},
			Icon:     "🍽️",
			Gradient: [2]string{"#f97316", "#ea580c"},
			Keywords: []string{
				"ristorante", "restaurant", "trattoria", "osteria", "pizzeria",
				"sushi", "ramen", "bistrot", "bistro", "tavern", "taverna",
				"cena", "pranzo", "dinner", "lunch", "brunch", "bar ", "pub ",
				"caffe", "caffè", "cafe", "gelateria", "enoteca",
			},
		},
		{
			Key:      KeyFlight,
			Labels:   map[string]string{"en": "Flight", "it": "Volo"},
			Icon:     "✈️",
			Gradient: [2]string{"#0ea5e9", "#0284c7"},
		},
		{
			Key:      KeyHotel,
			Labels:   map[string]string{"en": "Hotel", "it": "Hotel"},
			Icon:     "🏨",
			Gradient: [2]string{"#8b5cf6", "#7c3aed"},
		},
		{
			Key:      KeyMuseum,
			Labels:   map[string]string{"en": "Museum", "it": "Museo"},
			Icon:     "🖼️",
			Gradient: [2]string{"#ec4899", "#db2777"},
			Keywords: []string{
				"museum", "museo", "musée", "gallery", "galleria",
				"exhibition", "mostra", "pinacoteca", "uffizi", "louvre",
			},
		},
		{
			Key:      KeyAttraction,
			Labels:   map[string]string{"en": "Attraction", "it": "Attrazione"},
			Icon:     "🎡",
			Gradient: [2]string{"#22c55e", "#16a34a"},
			Keywords: []string{
				"tour ", "tour,", "attraction", "attrazione", "parco", "park ",
				"zoo", "aquarium", "acquario", "castello", "castle",
				"duomo", "cattedrale", "cathedral", "basilica", "tempio",
				"temple", "shrine", "santuario", "colosseo", "colosseum",
				"giardino", "garden",
			},
		},
		{
			Key:      KeyTrain,
			Labels:   map[string]string{"en": "Train", "it": "Treno"},
			Icon:     "🚆",
			Gradient: [2]string{"#eab308", "#ca8a04"},
			Keywords: []string{
				"treno", "train", "railway", "ferrovia", "stazione",
				"station ", "frecciarossa", "italo", "eurostar", "intercity",
				"shinkansen",
			},
		},
		{
			Key:      KeyPlace,
			Labels:   map[string]string{"en": "Place", "it": "Luogo"},
			Icon:     "📍",
			Gradient: [2]string{"#64748b", "#475569"},
		},
	}

	r := &Registry{configs: make(map[Key]Config, len(configs))}
	for _, c := range configs {
		r.configs[c.Key] = c
		r.order = append(r.order, c.Key)
	}
	return r
}

func (r *Registry) Get(key Key) (Config, bool) {
	c, ok := r.configs[key]
	return c, ok
}

func (r *Registry) Known(key Key) bool {
	_, ok := r.configs[key]
	return ok
}

// All returns the categories in display order.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.configs[key])
	}
	return out
}

// Keys returns every category key in display order.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.order))
	copy(out, r.order)
	return out
}

// Label resolves the display label for a locale, falling back to
// English.
func (r *Registry) Label(key Key, locale string) string {
	c, ok := r.configs[key]
	if !ok {
		return string(key)
	}
	if label, ok := c.Labels[locale]; ok {
		return label
	}
	return c.Labels["en"]
}
