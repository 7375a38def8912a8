package category

import (
	"strings"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

// Classifier maps events to category keys. Flights and hotel events
// classify by type; activities use their explicit category when it is
// a known key, otherwise a keyword heuristic over name and description.
// Classify always returns a valid key, worst case KeyPlace.
type Classifier struct {
	registry *Registry
}

func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

func (c *Classifier) Classify(ev domain.Event) Key {
	switch {
	case ev.Type == domain.EventFlight:
		return KeyFlight
	case strings.HasPrefix(string(ev.Type), "hotel"):
		return KeyHotel
	case ev.Type == domain.EventActivity && ev.Activity != nil:
		if override := Key(ev.Activity.Category); override != "" && c.registry.Known(override) {
			return override
		}
		return c.classifyText(ev.Activity.Name + " " + ev.Activity.Description)
	}
	return KeyPlace
}

// Config resolves the full category configuration for an event.
func (c *Classifier) Config(ev domain.Event) Config {
	cfg, ok := c.registry.Get(c.Classify(ev))
	if !ok {
		cfg, _ = c.registry.Get(KeyPlace)
	}
	return cfg
}

// classifyText runs the keyword heuristic: raw substring match against
// the lowercased text, categories checked in heuristicOrder, first
// match wins.
func (c *Classifier) classifyText(text string) Key {
	text = strings.ToLower(text)
	for _, key := range heuristicOrder {
		cfg := c.registry.configs[key]
		for _, keyword := range cfg.Keywords {
			if strings.Contains(text, keyword) {
				return key
			}
		}
	}
	return KeyPlace
}
