package domain

type EventType string

const (
	EventFlight        EventType = "flight"
	EventHotelCheckIn  EventType = "hotel-checkin"
	EventHotelStay     EventType = "hotel-stay"
	EventHotelCheckOut EventType = "hotel-checkout"
	EventActivity      EventType = "activity"
)

// Event is a derived view-model record, never persisted. Exactly one
// of Flight/Hotel/Activity is set and points back at the source record,
// so in-place edits to the source are visible without a rebuild.
type Event struct {
	Date     string
	Time     string // empty means timeless; timeless events sort first within a day
	Type     EventType
	Flight   *Flight
	Hotel    *Hotel
	Activity *Activity
}

// Timeless reports whether the event has no time of day.
func (e Event) Timeless() bool {
	return e.Time == ""
}

// DayBucket holds the ordered events of one calendar day. A bucket
// exists for every day in the trip span even when Events is empty.
type DayBucket struct {
	Date   string
	Events []Event
}
