package trips

import (
	"context"
	"errors"
	"log"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/repository"
	"github.com/fstagno77/travel-organizer-sub001/internal/timeline"
)

type TripUseCase interface {
	List(ctx context.Context, ownerEmail string) ([]domain.Trip, error)
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Delete(ctx context.Context, id int64) error
	Timeline(ctx context.Context, id int64) (*timeline.Timeline, error)
}

// Cache is the slice of the timeline cache this service needs.
type Cache interface {
	GetTimeline(ctx context.Context, tripID int64) (*timeline.Timeline, error)
	SetTimeline(ctx context.Context, tripID int64, tl *timeline.Timeline) error
	InvalidateTimeline(ctx context.Context, tripID int64) error
}

type TripService struct {
	trips   repository.TripRepository
	cache   Cache
	builder *timeline.Builder
}

func NewTripService(trips repository.TripRepository, cache Cache) *TripService {
	return &TripService{trips: trips, cache: cache, builder: timeline.NewBuilder()}
}

func (s *TripService) List(ctx context.Context, ownerEmail string) ([]domain.Trip, error) {
	return s.trips.List(ctx, ownerEmail)
}

func (s *TripService) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *TripService) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if trip.Title == "" {
		return nil, errors.New("trip title is required")
	}
	if trip.StartDate != "" && trip.EndDate != "" && trip.EndDate < trip.StartDate {
		return nil, errors.New("trip end date precedes start date")
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTimeline(ctx, id)
	}
	return nil
}

// Timeline returns the built day-by-day timeline for a trip, cached so
// filter/search/view changes on the client never trigger a rebuild.
func (s *TripService) Timeline(ctx context.Context, id int64) (*timeline.Timeline, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTimeline(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tl := s.builder.Build(trip)
	for _, issue := range tl.Issues {
		log.Printf("trip %d: skipped %s with malformed date %q", id, issue.Source, issue.Value)
	}
	if s.cache != nil {
		_ = s.cache.SetTimeline(ctx, id, tl)
	}
	return tl, nil
}

var _ TripUseCase = (*TripService)(nil)
