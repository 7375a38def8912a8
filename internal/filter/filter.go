// Package filter holds the transient category/search state and
// recomputes a filtered projection of the grouped timeline on every
// change. Apply never touches the underlying buckets, so filter
// changes never force a timeline rebuild.
package filter

import (
	"strings"

	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

// State is the explicit filter state object: the set of active
// categories plus the free-text query. Zero values are never used;
// construct with NewState.
type State struct {
	Active map[category.Key]bool
	Query  string
}

// NewState starts with every category active and an empty query.
func NewState(registry *category.Registry) *State {
	active := make(map[category.Key]bool)
	for _, key := range registry.Keys() {
		active[key] = true
	}
	return &State{Active: active}
}

func (s *State) Toggle(key category.Key) {
	s.Active[key] = !s.Active[key]
}

// ToggleAll is the single select-all/deselect-all affordance: when
// every category is active it clears them all, otherwise it activates
// them all. Deliberately binary, not a tri-state control.
func (s *State) ToggleAll(registry *category.Registry) {
	all := true
	for _, key := range registry.Keys() {
		if !s.Active[key] {
			all = false
			break
		}
	}
	for _, key := range registry.Keys() {
		s.Active[key] = !all
	}
}

func (s *State) SetQuery(q string) {
	s.Query = q
}

type Controller struct {
	classifier *category.Classifier
}

func NewController(classifier *category.Classifier) *Controller {
	return &Controller{classifier: classifier}
}

// Apply keeps an event iff its category is active and it matches the
// query. Every day bucket survives, possibly with an empty event list,
// and the result is always a fresh structure.
func (c *Controller) Apply(days []domain.DayBucket, state *State) []domain.DayBucket {
	out := make([]domain.DayBucket, 0, len(days))
	for _, day := range days {
		filtered := domain.DayBucket{Date: day.Date}
		for _, ev := range day.Events {
			if !state.Active[c.classifier.Classify(ev)] {
				continue
			}
			if !matchesSearch(ev, state.Query) {
				continue
			}
			filtered.Events = append(filtered.Events, ev)
		}
		out = append(out, filtered)
	}
	return out
}

// matchesSearch is a case-insensitive substring test over the
// type-specific text fields. An empty query matches everything.
func matchesSearch(ev domain.Event, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range searchFields(ev) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func searchFields(ev domain.Event) []string {
	switch ev.Type {
	case domain.EventFlight:
		if f := ev.Flight; f != nil {
			return []string{
				f.Departure.City, f.Departure.Code,
				f.Arrival.City, f.Arrival.Code,
				f.Airline, f.FlightNumber,
			}
		}
	case domain.EventHotelCheckIn, domain.EventHotelStay, domain.EventHotelCheckOut:
		if h := ev.Hotel; h != nil {
			return []string{h.Name, h.Address}
		}
	case domain.EventActivity:
		if a := ev.Activity; a != nil {
			return []string{a.Name, a.Description, a.Address}
		}
	}
	return nil
}
