package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/timeline"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTripUseCase is a mock implementation of trips.TripUseCase
type MockTripUseCase struct {
	mock.Mock
}

func (m *MockTripUseCase) List(ctx context.Context, ownerEmail string) ([]domain.Trip, error) {
	args := m.Called(ctx, ownerEmail)
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripUseCase) Timeline(ctx context.Context, id int64) (*timeline.Timeline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timeline.Timeline), args.Error(1)
}

func TestTripHandler_list(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewTripHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/trips?owner=me@example.com", nil)

	trips := []domain.Trip{
		{ID: 1, Title: "Tokyo", StartDate: "2026-06-16", EndDate: "2026-06-19"},
	}

	mockService.On("List", c.Request.Context(), "me@example.com").Return(trips, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestTripHandler_get(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewTripHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/trips/1", nil)

	trip := &domain.Trip{ID: 1, Title: "Tokyo", StartDate: "2026-06-16", EndDate: "2026-06-19"}

	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(trip, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestTripHandler_get_InvalidID(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewTripHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/trips/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestTripHandler_create(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewTripHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"title":"Tokyo","owner_email":"me@example.com","start_date":"2026-06-16","end_date":"2026-06-19"}`
	c.Request = httptest.NewRequest("POST", "/trips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Trip")).
		Return(&domain.Trip{ID: 1, Title: "Tokyo"}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}
