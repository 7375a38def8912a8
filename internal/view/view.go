// Package view projects grouped day events into presentational
// structures. Renderers are pure: they never fetch, never mutate their
// input, and can be driven independently from the same day buckets.
// Mapping the structures onto an actual UI surface is the caller's
// concern.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

// Decoration is the per-event styling every renderer attaches.
type Decoration struct {
	Category category.Key `json:"category"`
	Icon     string       `json:"icon"`
	Gradient [2]string    `json:"gradient"`
}

func decorate(c *category.Classifier, ev domain.Event) Decoration {
	cfg := c.Config(ev)
	return Decoration{Category: cfg.Key, Icon: cfg.Icon, Gradient: cfg.Gradient}
}

// eventTitle builds the human-readable one-line label for an event.
func eventTitle(ev domain.Event, reg *category.Registry, locale string) string {
	switch ev.Type {
	case domain.EventFlight:
		if ev.Flight != nil {
			return fmt.Sprintf("Flight from %s → %s", ev.Flight.Departure.City, ev.Flight.Arrival.City)
		}
	case domain.EventHotelCheckIn:
		if ev.Hotel != nil {
			return fmt.Sprintf("%s – Check-in", ev.Hotel.Name)
		}
	case domain.EventHotelStay:
		if ev.Hotel != nil {
			return fmt.Sprintf("%s – Stay", ev.Hotel.Name)
		}
	case domain.EventHotelCheckOut:
		if ev.Hotel != nil {
			return fmt.Sprintf("%s – Check-out", ev.Hotel.Name)
		}
	case domain.EventActivity:
		if ev.Activity != nil {
			return ev.Activity.Name
		}
	}
	return reg.Label(category.KeyPlace, locale)
}

// timeLabel formats the event time range for display; timeless events
// get an empty label.
func timeLabel(ev domain.Event) string {
	if ev.Timeless() {
		return ""
	}
	if ev.Type == domain.EventActivity && ev.Activity != nil && ev.Activity.EndTime != "" {
		return ev.Time + " – " + ev.Activity.EndTime
	}
	return ev.Time
}

// flightDuration computes the HhMm label between departure and
// arrival, rolling over midnight when the arrival lands the next day.
func flightDuration(f *domain.Flight) string {
	dep, err := time.Parse("15:04", f.DepartureTime)
	if err != nil {
		return ""
	}
	arr, err := time.Parse("15:04", f.ArrivalTime)
	if err != nil {
		return ""
	}
	if f.ArrivalNextDay {
		arr = arr.Add(24 * time.Hour)
	}
	d := arr.Sub(dep)
	if d < 0 {
		return ""
	}
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

// truncate caps a description at limit runes and appends an ellipsis
// so cards keep a uniform height.
func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "…"
}
