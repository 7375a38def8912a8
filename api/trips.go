package api

import (
	"net/http"
	"strconv"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/trips"
	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	service trips.TripUseCase
}

type createTripRequest struct {
	Title      string            `json:"title"`
	OwnerEmail string            `json:"owner_email"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	Flights    []domain.Flight   `json:"flights"`
	Hotels     []domain.Hotel    `json:"hotels"`
	Activities []domain.Activity `json:"activities"`
}

func NewTripHandler(service trips.TripUseCase) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.DELETE("/:id", h.remove)
}

func (h *TripHandler) list(c *gin.Context) {
	trips, err := h.service.List(c.Request.Context(), c.Query("owner"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	trip, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) create(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.service.Create(c.Request.Context(), &domain.Trip{
		Title:      req.Title,
		OwnerEmail: req.OwnerEmail,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Flights:    req.Flights,
		Hotels:     req.Hotels,
		Activities: req.Activities,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
