package timeline

import (
	"testing"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokyoTrip() *domain.Trip {
	return &domain.Trip{
		ID:        1,
		Title:     "Tokyo",
		StartDate: "2026-06-16",
		EndDate:   "2026-06-19",
		Flights: []domain.Flight{
			{
				Date:           "2026-06-16",
				DepartureTime:  "08:00",
				ArrivalTime:    "06:30",
				ArrivalNextDay: true,
				Departure:      domain.FlightEndpoint{Code: "FCO", City: "Rome"},
				Arrival:        domain.FlightEndpoint{Code: "HND", City: "Tokyo"},
				FlightNumber:   "AZ784",
			},
		},
		Hotels: []domain.Hotel{
			{
				Name:     "Hotel Tokyo",
				CheckIn:  domain.StayBound{Date: "2026-06-16", Time: "15:00"},
				CheckOut: domain.StayBound{Date: "2026-06-19", Time: "11:00"},
				Nights:   3,
			},
		},
	}
}

func TestBuild_TokyoScenario(t *testing.T) {
	tl := NewBuilder().Build(tokyoTrip())

	assert.Equal(t, []string{"2026-06-16", "2026-06-17", "2026-06-18", "2026-06-19"}, tl.AllDates)

	day16 := tl.Grouped["2026-06-16"]
	require.Len(t, day16, 2)
	assert.Equal(t, domain.EventFlight, day16[0].Type)
	assert.Equal(t, "08:00", day16[0].Time)
	assert.Equal(t, domain.EventHotelCheckIn, day16[1].Type)
	assert.Equal(t, "15:00", day16[1].Time)

	for _, date := range []string{"2026-06-17", "2026-06-18"} {
		day := tl.Grouped[date]
		require.Len(t, day, 1)
		assert.Equal(t, domain.EventHotelStay, day[0].Type)
		assert.True(t, day[0].Timeless())
	}

	day19 := tl.Grouped["2026-06-19"]
	require.Len(t, day19, 1)
	assert.Equal(t, domain.EventHotelCheckOut, day19[0].Type)
}

// Every day of the trip span appears, gap-free and ascending, even
// with no events at all.
func TestBuild_SpanCoverage(t *testing.T) {
	trip := &domain.Trip{StartDate: "2026-01-30", EndDate: "2026-02-02"}
	tl := NewBuilder().Build(trip)

	assert.Equal(t, []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}, tl.AllDates)
	assert.Empty(t, tl.Grouped)

	days := tl.Days()
	require.Len(t, days, 4)
	for _, day := range days {
		assert.Empty(t, day.Events)
	}
}

func TestBuild_EventOutsideSpan(t *testing.T) {
	trip := &domain.Trip{
		StartDate: "2026-06-16",
		EndDate:   "2026-06-17",
		Activities: []domain.Activity{
			{Date: "2026-06-20", Name: "Late addition"},
		},
	}
	tl := NewBuilder().Build(trip)

	assert.Equal(t, []string{"2026-06-16", "2026-06-17", "2026-06-20"}, tl.AllDates)
	assert.Len(t, tl.Grouped["2026-06-20"], 1)
}

func TestBuild_HotelExpansionCounts(t *testing.T) {
	cases := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantStays int
	}{
		{"one night", "2026-06-16", "2026-06-17", 0},
		{"same day", "2026-06-16", "2026-06-16", 0},
		{"two nights", "2026-06-16", "2026-06-18", 1},
		{"week", "2026-06-16", "2026-06-23", 6},
		{"across month end", "2026-06-29", "2026-07-02", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := &domain.Trip{
				Hotels: []domain.Hotel{{
					Name:     "Hotel",
					CheckIn:  domain.StayBound{Date: tc.checkIn},
					CheckOut: domain.StayBound{Date: tc.checkOut},
				}},
			}
			tl := NewBuilder().Build(trip)

			var checkins, stays, checkouts int
			for _, events := range tl.Grouped {
				for _, ev := range events {
					switch ev.Type {
					case domain.EventHotelCheckIn:
						checkins++
					case domain.EventHotelStay:
						stays++
						assert.NotEqual(t, tc.checkIn, ev.Date)
						assert.NotEqual(t, tc.checkOut, ev.Date)
					case domain.EventHotelCheckOut:
						checkouts++
					}
				}
			}
			assert.Equal(t, 1, checkins)
			assert.Equal(t, 1, checkouts)
			assert.Equal(t, tc.wantStays, stays)
		})
	}
}

func TestBuild_DayOrdering(t *testing.T) {
	trip := &domain.Trip{
		Flights: []domain.Flight{
			{Date: "2026-06-16", DepartureTime: "11:00", FlightNumber: "AZ1"},
		},
		Hotels: []domain.Hotel{
			// Check-out at 11:00 collides with the flight; the type
			// priority puts the check-out first.
			{Name: "Old Hotel", CheckIn: domain.StayBound{Date: "2026-06-14"}, CheckOut: domain.StayBound{Date: "2026-06-16", Time: "11:00"}},
			{Name: "New Hotel", CheckIn: domain.StayBound{Date: "2026-06-16", Time: "15:00"}, CheckOut: domain.StayBound{Date: "2026-06-18"}},
		},
		Activities: []domain.Activity{
			{Date: "2026-06-16", Name: "Dinner", StartTime: "20:00"},
			{Date: "2026-06-16", Name: "Untimed stroll"},
		},
	}
	tl := NewBuilder().Build(trip)

	day := tl.Grouped["2026-06-16"]
	require.Len(t, day, 5)

	// Timeless first.
	assert.True(t, day[0].Timeless())
	assert.Equal(t, domain.EventActivity, day[0].Type)

	// Then timed events ascending, checkout before flight at 11:00.
	assert.Equal(t, domain.EventHotelCheckOut, day[1].Type)
	assert.Equal(t, domain.EventFlight, day[2].Type)
	assert.Equal(t, domain.EventHotelCheckIn, day[3].Type)
	assert.Equal(t, domain.EventActivity, day[4].Type)

	var lastTime string
	for _, ev := range day[1:] {
		assert.GreaterOrEqual(t, ev.Time, lastTime)
		lastTime = ev.Time
	}
}

func TestBuild_MalformedDates(t *testing.T) {
	trip := &domain.Trip{
		StartDate: "2026-06-16",
		EndDate:   "2026-06-17",
		Flights: []domain.Flight{
			{Date: "16/06/2026", FlightNumber: "AZ1"},
		},
		Hotels: []domain.Hotel{
			{Name: "Hotel", CheckIn: domain.StayBound{Date: "garbage"}, CheckOut: domain.StayBound{Date: "2026-06-17", Time: "10:00"}},
		},
		Activities: []domain.Activity{
			{Date: "", Name: "Lost"},
			{Date: "2026-06-16", Name: "Kept"},
		},
	}
	tl := NewBuilder().Build(trip)

	require.Len(t, tl.Issues, 3)
	for _, issue := range tl.Issues {
		assert.Equal(t, IssueMalformedDate, issue.Kind)
	}

	// The parseable check-out still lands; the stay placeholders are
	// dropped with the broken check-in.
	require.Len(t, tl.Grouped["2026-06-17"], 1)
	assert.Equal(t, domain.EventHotelCheckOut, tl.Grouped["2026-06-17"][0].Type)

	require.Len(t, tl.Grouped["2026-06-16"], 1)
	assert.Equal(t, "Kept", tl.Grouped["2026-06-16"][0].Activity.Name)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	trip := tokyoTrip()
	snapshot := *trip
	snapshotFlights := append([]domain.Flight(nil), trip.Flights...)
	snapshotHotels := append([]domain.Hotel(nil), trip.Hotels...)

	NewBuilder().Build(trip)

	assert.Equal(t, snapshot.StartDate, trip.StartDate)
	assert.Equal(t, snapshot.EndDate, trip.EndDate)
	assert.Equal(t, snapshotFlights, trip.Flights)
	assert.Equal(t, snapshotHotels, trip.Hotels)
}

// Events carry pointers to the trip's own records, so an in-place edit
// shows up without a rebuild.
func TestBuild_EventsReferenceSourceRecords(t *testing.T) {
	trip := tokyoTrip()
	tl := NewBuilder().Build(trip)

	trip.Hotels[0].Name = "Renamed Hotel"
	assert.Equal(t, "Renamed Hotel", tl.Grouped["2026-06-17"][0].Hotel.Name)
}

func TestBuild_NilAndEmptyTrip(t *testing.T) {
	tl := NewBuilder().Build(nil)
	assert.Empty(t, tl.AllDates)
	assert.Empty(t, tl.Days())

	tl = NewBuilder().Build(&domain.Trip{})
	assert.Empty(t, tl.AllDates)
	assert.Empty(t, tl.Issues)
}
