package view

import (
	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

type ListView struct {
	Days  []ListDay `json:"days"`
	Empty bool      `json:"empty"`
}

type ListDay struct {
	Date string    `json:"date"`
	Rows []ListRow `json:"rows"`
}

type ListRow struct {
	Decoration
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	TimeLabel string `json:"time_label,omitempty"`
}

type ListRenderer struct {
	classifier *category.Classifier
	registry   *category.Registry
	locale     string
}

func NewListRenderer(classifier *category.Classifier, registry *category.Registry, locale string) *ListRenderer {
	return &ListRenderer{classifier: classifier, registry: registry, locale: locale}
}

// Render produces one row per event per day. Days without events are
// kept so the list shows the full trip span.
func (r *ListRenderer) Render(days []domain.DayBucket) ListView {
	v := ListView{Days: make([]ListDay, 0, len(days)), Empty: true}
	for _, day := range days {
		ld := ListDay{Date: day.Date, Rows: make([]ListRow, 0, len(day.Events))}
		for _, ev := range day.Events {
			v.Empty = false
			ld.Rows = append(ld.Rows, ListRow{
				Decoration: decorate(r.classifier, ev),
				Title:      eventTitle(ev, r.registry, r.locale),
				Subtitle:   r.subtitle(ev),
				TimeLabel:  timeLabel(ev),
			})
		}
		v.Days = append(v.Days, ld)
	}
	return v
}

func (r *ListRenderer) subtitle(ev domain.Event) string {
	switch ev.Type {
	case domain.EventFlight:
		if ev.Flight != nil {
			return ev.Flight.Airline + " " + ev.Flight.FlightNumber
		}
	case domain.EventHotelCheckIn, domain.EventHotelStay, domain.EventHotelCheckOut:
		if ev.Hotel != nil {
			return ev.Hotel.Address
		}
	case domain.EventActivity:
		if ev.Activity != nil {
			return ev.Activity.Description
		}
	}
	return ""
}
