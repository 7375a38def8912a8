package timeline

import (
	"fmt"
	"sort"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
)

type IssueKind string

const IssueMalformedDate IssueKind = "malformed_date"

// Issue records a booking record that could not be placed on the
// timeline. The rest of the build always completes.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Source string    `json:"source"`
	Value  string    `json:"value"`
}

// Timeline is the built day-by-day view of a trip. AllDates covers
// every day of the trip span plus any event date outside it, sorted
// ascending; Grouped holds the per-day events, each day already sorted.
type Timeline struct {
	AllDates []string                  `json:"all_dates"`
	Grouped  map[string][]domain.Event `json:"grouped"`
	Issues   []Issue                   `json:"issues,omitempty"`
}

// Days materializes one DayBucket per date in AllDates, empty days
// included.
func (t *Timeline) Days() []domain.DayBucket {
	buckets := make([]domain.DayBucket, 0, len(t.AllDates))
	for _, date := range t.AllDates {
		buckets = append(buckets, domain.DayBucket{Date: date, Events: t.Grouped[date]})
	}
	return buckets
}

// typePriority breaks ordering ties within a day: check-outs lead,
// then flights, check-ins, stays, and free activities.
var typePriority = map[domain.EventType]int{
	domain.EventHotelCheckOut: 0,
	domain.EventFlight:        1,
	domain.EventHotelCheckIn:  2,
	domain.EventHotelStay:     3,
	domain.EventActivity:      4,
}

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build expands the trip's bookings into dated events and groups them
// per calendar day. The input trip is never mutated; events point back
// at the trip's own records.
func (b *Builder) Build(trip *domain.Trip) *Timeline {
	tl := &Timeline{Grouped: make(map[string][]domain.Event)}
	if trip == nil {
		tl.AllDates = []string{}
		return tl
	}

	var events []domain.Event
	for i := range trip.Flights {
		f := &trip.Flights[i]
		date, err := ParseDate(f.Date)
		if err != nil {
			tl.addIssue(fmt.Sprintf("flight %s", f.FlightNumber), f.Date)
			continue
		}
		events = append(events, domain.Event{
			Date:   date.String(),
			Time:   f.DepartureTime,
			Type:   domain.EventFlight,
			Flight: f,
		})
	}
	for i := range trip.Hotels {
		events = append(events, b.expandHotel(tl, &trip.Hotels[i])...)
	}
	for i := range trip.Activities {
		a := &trip.Activities[i]
		date, err := ParseDate(a.Date)
		if err != nil {
			tl.addIssue(fmt.Sprintf("activity %s", a.Name), a.Date)
			continue
		}
		events = append(events, domain.Event{
			Date:     date.String(),
			Time:     a.StartTime,
			Type:     domain.EventActivity,
			Activity: a,
		})
	}

	seen := make(map[string]bool)
	for _, ev := range events {
		tl.Grouped[ev.Date] = append(tl.Grouped[ev.Date], ev)
		seen[ev.Date] = true
	}

	if start, err := ParseDate(trip.StartDate); err == nil {
		if end, err := ParseDate(trip.EndDate); err == nil && !end.Before(start) {
			for d := start; !end.Before(d); d = d.AddDays(1) {
				seen[d.String()] = true
			}
		}
	}

	tl.AllDates = make([]string, 0, len(seen))
	for date := range seen {
		tl.AllDates = append(tl.AllDates, date)
	}
	sort.Strings(tl.AllDates)

	for date := range tl.Grouped {
		sortDay(tl.Grouped[date])
	}
	return tl
}

// expandHotel emits check-in on the first day, one stay placeholder per
// whole day strictly between the endpoints, and check-out on the last
// day. A one-night stay produces no stay events.
func (b *Builder) expandHotel(tl *Timeline, h *domain.Hotel) []domain.Event {
	checkIn, inErr := ParseDate(h.CheckIn.Date)
	checkOut, outErr := ParseDate(h.CheckOut.Date)
	if inErr != nil {
		tl.addIssue(fmt.Sprintf("hotel %s check-in", h.Name), h.CheckIn.Date)
	}
	if outErr != nil {
		tl.addIssue(fmt.Sprintf("hotel %s check-out", h.Name), h.CheckOut.Date)
	}

	var events []domain.Event
	if inErr == nil {
		events = append(events, domain.Event{
			Date:  checkIn.String(),
			Time:  h.CheckIn.Time,
			Type:  domain.EventHotelCheckIn,
			Hotel: h,
		})
	}
	if inErr == nil && outErr == nil {
		for d := checkIn.AddDays(1); d.Before(checkOut); d = d.AddDays(1) {
			events = append(events, domain.Event{
				Date:  d.String(),
				Type:  domain.EventHotelStay,
				Hotel: h,
			})
		}
	}
	if outErr == nil {
		events = append(events, domain.Event{
			Date:  checkOut.String(),
			Time:  h.CheckOut.Time,
			Type:  domain.EventHotelCheckOut,
			Hotel: h,
		})
	}
	return events
}

// sortDay orders one day's events: timeless first, then by time of day,
// with the fixed type priority as final tie-break.
func sortDay(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Timeless() != b.Timeless() {
			return a.Timeless()
		}
		if !a.Timeless() && a.Time != b.Time {
			return a.Time < b.Time
		}
		return typePriority[a.Type] < typePriority[b.Type]
	})
}

func (t *Timeline) addIssue(source, value string) {
	t.Issues = append(t.Issues, Issue{Kind: IssueMalformedDate, Source: source, Value: value})
}
