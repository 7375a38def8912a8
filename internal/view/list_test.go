package view

import (
	"testing"

	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDays() []domain.DayBucket {
	flight := &domain.Flight{
		Date:           "2026-06-16",
		DepartureTime:  "08:00",
		ArrivalTime:    "06:30",
		ArrivalNextDay: true,
		Departure:      domain.FlightEndpoint{Code: "FCO", City: "Rome"},
		Arrival:        domain.FlightEndpoint{Code: "HND", City: "Tokyo"},
		Airline:        "ITA Airways",
		FlightNumber:   "AZ784",
	}
	hotel := &domain.Hotel{Name: "Hotel Tokyo", Address: "1-1 Marunouchi"}
	dinner := &domain.Activity{
		Name:        "Sushi Dinner",
		Description: "An extremely long omakase description that easily spills past the sixty character card budget",
		StartTime:   "20:00",
		EndTime:     "22:00",
	}

	return []domain.DayBucket{
		{
			Date: "2026-06-16",
			Events: []domain.Event{
				{Date: "2026-06-16", Time: "08:00", Type: domain.EventFlight, Flight: flight},
				{Date: "2026-06-16", Time: "15:00", Type: domain.EventHotelCheckIn, Hotel: hotel},
			},
		},
		{
			Date: "2026-06-17",
			Events: []domain.Event{
				{Date: "2026-06-17", Type: domain.EventHotelStay, Hotel: hotel},
				{Date: "2026-06-17", Time: "20:00", Type: domain.EventActivity, Activity: dinner},
			},
		},
		{Date: "2026-06-18"},
	}
}

func newRenderDeps() (*category.Classifier, *category.Registry) {
	registry := category.NewRegistry()
	return category.NewClassifier(registry), registry
}

func TestListRenderer_Render(t *testing.T) {
	classifier, registry := newRenderDeps()
	v := NewListRenderer(classifier, registry, "en").Render(fixtureDays())

	assert.False(t, v.Empty)
	require.Len(t, v.Days, 3)

	day16 := v.Days[0]
	require.Len(t, day16.Rows, 2)
	assert.Equal(t, "Flight from Rome → Tokyo", day16.Rows[0].Title)
	assert.Equal(t, "ITA Airways AZ784", day16.Rows[0].Subtitle)
	assert.Equal(t, "08:00", day16.Rows[0].TimeLabel)
	assert.Equal(t, category.KeyFlight, day16.Rows[0].Category)
	assert.Equal(t, "Hotel Tokyo – Check-in", day16.Rows[1].Title)

	day17 := v.Days[1]
	require.Len(t, day17.Rows, 2)
	assert.Equal(t, "Hotel Tokyo – Stay", day17.Rows[0].Title)
	assert.Empty(t, day17.Rows[0].TimeLabel)
	assert.Equal(t, "Sushi Dinner", day17.Rows[1].Title)
	assert.Equal(t, "20:00 – 22:00", day17.Rows[1].TimeLabel)
	assert.Equal(t, category.KeyRestaurant, day17.Rows[1].Category)

	// Empty day survives with zero rows.
	assert.Empty(t, v.Days[2].Rows)
}

func TestListRenderer_EmptyTrip(t *testing.T) {
	classifier, registry := newRenderDeps()

	v := NewListRenderer(classifier, registry, "en").Render(nil)
	assert.True(t, v.Empty)
	assert.Empty(t, v.Days)

	v = NewListRenderer(classifier, registry, "en").Render([]domain.DayBucket{{Date: "2026-06-16"}})
	assert.True(t, v.Empty)
	require.Len(t, v.Days, 1)
}

func TestListRenderer_DoesNotMutateInput(t *testing.T) {
	classifier, registry := newRenderDeps()
	days := fixtureDays()
	NewListRenderer(classifier, registry, "en").Render(days)
	assert.Equal(t, fixtureDays(), days)
}
