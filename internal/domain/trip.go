package domain

import "time"

// Trip is the aggregate root. Dates are calendar dates in ISO
// YYYY-MM-DD form; the timeline spans [StartDate, EndDate] inclusive.
type Trip struct {
	ID         int64
	Title      string
	OwnerEmail string
	StartDate  string
	EndDate    string
	Flights    []Flight
	Hotels     []Hotel
	Activities []Activity
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type FlightEndpoint struct {
	Code     string
	City     string
	Airport  string
	Terminal string
}

type Flight struct {
	ID               int64
	TripID           int64
	Date             string
	DepartureTime    string
	ArrivalTime      string
	ArrivalNextDay   bool
	Departure        FlightEndpoint
	Arrival          FlightEndpoint
	Airline          string
	FlightNumber     string
	BookingReference string
	PassengerName    string
}

type StayBound struct {
	Date string
	Time string
}

type Hotel struct {
	ID               int64
	TripID           int64
	Name             string
	Address          string
	CheckIn          StayBound
	CheckOut         StayBound
	Nights           int
	BookingReference string
}

// Activity is a free-form itinerary entry. Category is an optional
// explicit override; unknown values fall back to heuristic
// classification.
type Activity struct {
	ID          int64
	TripID      int64
	Date        string
	StartTime   string
	EndTime     string
	Name        string
	Description string
	Address     string
	Category    string
}
