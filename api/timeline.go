package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/filter"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/trips"
	"github.com/fstagno77/travel-organizer-sub001/internal/view"
	"github.com/gin-gonic/gin"
)

// TimelineHandler serves the day-by-day itinerary in the three view
// modes. The timeline itself is cached by the trip service; every
// request re-applies filters and re-renders, mirroring the client-side
// recompute-on-state-change model.
type TimelineHandler struct {
	service    trips.TripUseCase
	registry   *category.Registry
	classifier *category.Classifier
	controller *filter.Controller
	locale     string
}

func NewTimelineHandler(service trips.TripUseCase, registry *category.Registry, locale string) *TimelineHandler {
	classifier := category.NewClassifier(registry)
	return &TimelineHandler{
		service:    service,
		registry:   registry,
		classifier: classifier,
		controller: filter.NewController(classifier),
		locale:     locale,
	}
}

func (h *TimelineHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/timeline", h.timeline)
	router.GET("/:id/timeline/categories", h.categories)
}

func (h *TimelineHandler) timeline(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	tl, err := h.service.Timeline(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	state := h.stateFromQuery(c)
	days := h.controller.Apply(tl.Days(), state)

	locale := c.DefaultQuery("locale", h.locale)
	switch c.DefaultQuery("view", "list") {
	case "list":
		c.JSON(http.StatusOK, view.NewListRenderer(h.classifier, h.registry, locale).Render(days))
	case "card":
		c.JSON(http.StatusOK, view.NewCardRenderer(h.classifier, h.registry, locale).Render(days))
	case "calendar":
		calState := view.InitialCalendarState(tl.AllDates, time.Now())
		if year, err := strconv.Atoi(c.Query("year")); err == nil {
			if month, err := strconv.Atoi(c.Query("month")); err == nil && month >= 1 && month <= 12 {
				calState = view.CalendarState{Year: year, Month: time.Month(month)}
			}
		}
		grid := view.NewCalendarRenderer(h.classifier, h.registry, locale).
			Render(days, trip.StartDate, trip.EndDate, calState)
		c.JSON(http.StatusOK, grid)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view mode"})
	}
}

// categories lists the registry for filter chips, localized.
func (h *TimelineHandler) categories(c *gin.Context) {
	locale := c.DefaultQuery("locale", h.locale)
	type chip struct {
		Key      category.Key `json:"key"`
		Label    string       `json:"label"`
		Icon     string       `json:"icon"`
		Gradient [2]string    `json:"gradient"`
	}
	chips := make([]chip, 0)
	for _, cfg := range h.registry.All() {
		chips = append(chips, chip{
			Key:      cfg.Key,
			Label:    h.registry.Label(cfg.Key, locale),
			Icon:     cfg.Icon,
			Gradient: cfg.Gradient,
		})
	}
	c.JSON(http.StatusOK, chips)
}

// stateFromQuery rebuilds the filter state per request: absent
// categories param means all active, "none" means none.
func (h *TimelineHandler) stateFromQuery(c *gin.Context) *filter.State {
	state := filter.NewState(h.registry)
	state.SetQuery(c.Query("q"))

	raw, ok := c.GetQuery("categories")
	if !ok {
		return state
	}
	if raw == "none" {
		state.ToggleAll(h.registry)
		return state
	}
	for key := range state.Active {
		state.Active[key] = false
	}
	for _, part := range strings.Split(raw, ",") {
		key := category.Key(strings.TrimSpace(part))
		if h.registry.Known(key) {
			state.Active[key] = true
		}
	}
	return state
}
