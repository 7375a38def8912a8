package api

import (
	"net/http"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/share"
	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	service share.ShareUseCase
}

type createShareRequest struct {
	TripID int64  `json:"trip_id"`
	Email  string `json:"email"`
}

type shareResponse struct {
	Token     string `json:"token"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	TripID    int64  `json:"trip_id"`
	Email     string `json:"email"`
}

func NewShareHandler(service share.ShareUseCase) *ShareHandler {
	return &ShareHandler{service: service}
}

func (h *ShareHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:token", h.get)
	router.DELETE("/:token", h.revoke)
}

func (h *ShareHandler) create(c *gin.Context) {
	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateShare(c.Request.Context(), share.CreateShareInput{
		TripID: req.TripID,
		Email:  req.Email,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toShareResponse(created))
}

func (h *ShareHandler) get(c *gin.Context) {
	found, err := h.service.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toShareResponse(found))
}

func (h *ShareHandler) revoke(c *gin.Context) {
	revoked, err := h.service.RevokeShare(c.Request.Context(), c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toShareResponse(revoked))
}

func toShareResponse(s *domain.Share) shareResponse {
	return shareResponse{
		Token:     s.Token,
		Status:    string(s.Status),
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		TripID:    s.TripID,
		Email:     s.Email,
	}
}
