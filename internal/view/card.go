package view

import (
	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

// descriptionBudget keeps activity cards at a uniform height.
const descriptionBudget = 60

type CardView struct {
	Days  []CardDay `json:"days"`
	Empty bool      `json:"empty"`
}

// CardDay is one horizontal row of cards.
type CardDay struct {
	Date  string `json:"date"`
	Cards []Card `json:"cards"`
}

type Card struct {
	Decoration
	Title       string `json:"title"`
	TimeLabel   string `json:"time_label,omitempty"`
	Route       string `json:"route,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Badge       string `json:"badge,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

type CardRenderer struct {
	classifier *category.Classifier
	registry   *category.Registry
	locale     string
}

func NewCardRenderer(classifier *category.Classifier, registry *category.Registry, locale string) *CardRenderer {
	return &CardRenderer{classifier: classifier, registry: registry, locale: locale}
}

func (r *CardRenderer) Render(days []domain.DayBucket) CardView {
	v := CardView{Days: make([]CardDay, 0, len(days)), Empty: true}
	for _, day := range days {
		cd := CardDay{Date: day.Date, Cards: make([]Card, 0, len(day.Events))}
		for _, ev := range day.Events {
			v.Empty = false
			cd.Cards = append(cd.Cards, r.card(ev))
		}
		v.Days = append(v.Days, cd)
	}
	return v
}

func (r *CardRenderer) card(ev domain.Event) Card {
	card := Card{
		Decoration: decorate(r.classifier, ev),
		Title:      eventTitle(ev, r.registry, r.locale),
		TimeLabel:  timeLabel(ev),
	}
	switch ev.Type {
	case domain.EventFlight:
		if f := ev.Flight; f != nil {
			card.Route = f.Departure.Code + " → " + f.Arrival.Code
			card.Duration = flightDuration(f)
		}
	case domain.EventHotelCheckIn, domain.EventHotelStay, domain.EventHotelCheckOut:
		if h := ev.Hotel; h != nil {
			card.Badge = stayBadge(ev.Type)
			card.Address = h.Address
		}
	case domain.EventActivity:
		if a := ev.Activity; a != nil {
			card.Description = truncate(a.Description, descriptionBudget)
			card.Address = a.Address
		}
	}
	return card
}

func stayBadge(t domain.EventType) string {
	switch t {
	case domain.EventHotelCheckIn:
		return "Check-in"
	case domain.EventHotelStay:
		return "Stay"
	case domain.EventHotelCheckOut:
		return "Check-out"
	}
	return ""
}
