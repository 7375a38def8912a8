package share

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/fstagno77/travel-organizer-sub001/internal/kafka"
	"github.com/fstagno77/travel-organizer-sub001/internal/repository"
	"github.com/google/uuid"
)

type ShareUseCase interface {
	CreateShare(ctx context.Context, input CreateShareInput) (*domain.Share, error)
	GetByToken(ctx context.Context, token string) (*domain.Share, error)
	RevokeShare(ctx context.Context, token string) (*domain.Share, error)
	ExpireStaleShares(ctx context.Context) ([]domain.Share, error)
}

// Cache is the slice of the redis cache this service needs: a lock so
// only one share per trip and invitee is minted at a time.
type Cache interface {
	AcquireShareLock(ctx context.Context, tripID int64, email string, ttl time.Duration) (bool, error)
	ReleaseShareLock(ctx context.Context, tripID int64, email string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ShareService struct {
	shares             repository.ShareRepository
	trips              repository.TripRepository
	cache              Cache
	producer           Producer
	shareTopic         string
	notificationsTopic string
	lockTTL            time.Duration
	shareTTL           time.Duration
}

type CreateShareInput struct {
	TripID int64  `json:"trip_id"`
	Email  string `json:"email"`
}

type ShareServiceOption func(*ShareService)

func WithNotificationsTopic(topic string) ShareServiceOption {
	return func(s *ShareService) {
		s.notificationsTopic = topic
	}
}

func NewShareService(
	shares repository.ShareRepository,
	trips repository.TripRepository,
	cache Cache,
	producer Producer,
	shareTopic string,
	lockTTL, shareTTL time.Duration,
	opts ...ShareServiceOption,
) *ShareService {
	service := &ShareService{
		shares:     shares,
		trips:      trips,
		cache:      cache,
		producer:   producer,
		shareTopic: shareTopic,
		lockTTL:    lockTTL,
		shareTTL:   shareTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ShareService) CreateShare(ctx context.Context, input CreateShareInput) (*domain.Share, error) {
	if input.TripID <= 0 {
		return nil, errors.New("trip id must be positive")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	trip, err := s.trips.GetByID(ctx, input.TripID)
	if err != nil {
		return nil, err
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireShareLock(ctx, input.TripID, input.Email, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("share creation already in progress")
		}
		locked = true
	}

	share := &domain.Share{
		TripID:    input.TripID,
		Token:     uuid.NewString(),
		Email:     input.Email,
		ExpiresAt: time.Now().Add(s.shareTTL),
	}

	if err := s.shares.Create(ctx, share); err != nil {
		if locked {
			_ = s.cache.ReleaseShareLock(ctx, input.TripID, input.Email)
		}
		return nil, err
	}

	if err := s.publish(ctx, "share_created", share, trip.Title); err != nil {
		log.Printf("WARNING: failed to publish share_created event for share %s: %v", share.Token, err)
	}
	if locked {
		_ = s.cache.ReleaseShareLock(ctx, input.TripID, input.Email)
	}
	return share, nil
}

func (s *ShareService) GetByToken(ctx context.Context, token string) (*domain.Share, error) {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if share.Status == domain.ShareStatusActive && !share.ExpiresAt.IsZero() && share.ExpiresAt.Before(time.Now()) {
		return s.shares.UpdateStatus(ctx, token, domain.ShareStatusExpired)
	}
	return share, nil
}

func (s *ShareService) RevokeShare(ctx context.Context, token string) (*domain.Share, error) {
	current, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ShareStatusRevoked || current.Status == domain.ShareStatusExpired {
		return current, nil
	}

	updated, err := s.shares.UpdateStatus(ctx, token, domain.ShareStatusRevoked)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "share_revoked", updated, ""); err != nil {
		log.Printf("WARNING: failed to publish share_revoked event for share %s: %v", updated.Token, err)
	}
	return updated, nil
}

func (s *ShareService) ExpireStaleShares(ctx context.Context) ([]domain.Share, error) {
	deadline := time.Now()
	expired, err := s.shares.ExpireActiveBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}
	for _, sh := range expired {
		_ = s.publish(ctx, "share_expired", &sh, "")
	}
	return expired, nil
}

func (s *ShareService) publish(ctx context.Context, eventType string, share *domain.Share, tripTitle string) error {
	if s.producer == nil || s.shareTopic == "" {
		return nil
	}
	event := kafka.ShareEvent{
		Type:      eventType,
		Token:     share.Token,
		TripID:    share.TripID,
		TripTitle: tripTitle,
		Email:     share.Email,
		Status:    string(share.Status),
		ExpiresAt: share.ExpiresAt,
	}
	if err := s.producer.Publish(ctx, s.shareTopic, share.Token, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, share.Token, event)
	}
	return nil
}

var _ ShareUseCase = (*ShareService)(nil)
