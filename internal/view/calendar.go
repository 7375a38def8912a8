package view

import (
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/timeline"
)

// CalendarState is the displayed month, passed in explicitly so month
// navigation stays unit-testable and never touches the cached timeline.
type CalendarState struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (s CalendarState) Prev() CalendarState {
	t := time.Date(s.Year, s.Month-1, 1, 0, 0, 0, 0, time.UTC)
	return CalendarState{Year: t.Year(), Month: t.Month()}
}

func (s CalendarState) Next() CalendarState {
	t := time.Date(s.Year, s.Month+1, 1, 0, 0, 0, 0, time.UTC)
	return CalendarState{Year: t.Year(), Month: t.Month()}
}

// InitialCalendarState picks the month of the first timeline date,
// falling back to the current month for an empty trip.
func InitialCalendarState(allDates []string, now time.Time) CalendarState {
	if len(allDates) > 0 {
		if d, err := timeline.ParseDate(allDates[0]); err == nil {
			return CalendarState{Year: d.Year, Month: d.Month}
		}
	}
	return CalendarState{Year: now.Year(), Month: now.Month()}
}

type MonthGrid struct {
	Year  int               `json:"year"`
	Month time.Month        `json:"month"`
	Weeks [][7]CalendarCell `json:"weeks"`
}

// CalendarCell is one grid cell; Day 0 marks a leading/trailing pad
// cell outside the month.
type CalendarCell struct {
	Day    int                 `json:"day"`
	Date   string              `json:"date,omitempty"`
	InTrip bool                `json:"in_trip"`
	Events []CalendarIndicator `json:"events,omitempty"`
}

type CalendarIndicator struct {
	Decoration
	Label string `json:"label"`
}

type CalendarRenderer struct {
	classifier *category.Classifier
	registry   *category.Registry
	locale     string
}

func NewCalendarRenderer(classifier *category.Classifier, registry *category.Registry, locale string) *CalendarRenderer {
	return &CalendarRenderer{classifier: classifier, registry: registry, locale: locale}
}

// Render builds the Monday-first grid for the state's month. Weeks are
// always 7 cells; days inside [tripStart, tripEnd] are marked.
func (r *CalendarRenderer) Render(days []domain.DayBucket, tripStart, tripEnd string, state CalendarState) MonthGrid {
	grouped := make(map[string][]domain.Event, len(days))
	for _, day := range days {
		grouped[day.Date] = day.Events
	}

	grid := MonthGrid{Year: state.Year, Month: state.Month}
	first := timeline.CivilDate{Year: state.Year, Month: state.Month, Day: 1}
	lead := first.Weekday()
	total := timeline.DaysIn(state.Year, state.Month)

	var week [7]CalendarCell
	slot := lead
	for day := 1; day <= total; day++ {
		date := timeline.CivilDate{Year: state.Year, Month: state.Month, Day: day}.String()
		cell := CalendarCell{
			Day:    day,
			Date:   date,
			InTrip: inSpan(date, tripStart, tripEnd),
		}
		for _, ev := range grouped[date] {
			cell.Events = append(cell.Events, CalendarIndicator{
				Decoration: decorate(r.classifier, ev),
				Label:      eventTitle(ev, r.registry, r.locale),
			})
		}
		week[slot] = cell
		slot++
		if slot == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]CalendarCell{}
			slot = 0
		}
	}
	if slot > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

func inSpan(date, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	return start <= date && date <= end
}
