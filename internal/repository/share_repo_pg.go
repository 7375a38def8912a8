package repository

import (
	"context"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShareRepository interface {
	Create(ctx context.Context, share *domain.Share) error
	GetByToken(ctx context.Context, token string) (*domain.Share, error)
	UpdateStatus(ctx context.Context, token string, status domain.ShareStatus) (*domain.Share, error)
	ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.Share, error)
}

type PGShareRepository struct {
	db *pgxpool.Pool
}

func NewShareRepository(db *pgxpool.Pool) ShareRepository {
	return &PGShareRepository{db: db}
}

func (r *PGShareRepository) Create(ctx context.Context, share *domain.Share) error {
	share.Status = domain.ShareStatusActive
	return r.db.QueryRow(ctx, `INSERT INTO shares (trip_id, token, status, email, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`, share.TripID, share.Token, share.Status, share.Email, share.ExpiresAt).
		Scan(&share.ID, &share.CreatedAt, &share.UpdatedAt)
}

func (r *PGShareRepository) GetByToken(ctx context.Context, token string) (*domain.Share, error) {
	row := r.db.QueryRow(ctx, `SELECT id, trip_id, token, status, email, expires_at, created_at, updated_at FROM shares WHERE token=$1`, token)
	var s domain.Share
	if err := row.Scan(&s.ID, &s.TripID, &s.Token, &s.Status, &s.Email, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGShareRepository) UpdateStatus(ctx context.Context, token string, status domain.ShareStatus) (*domain.Share, error) {
	row := r.db.QueryRow(ctx, `UPDATE shares SET status=$1, updated_at=now() WHERE token=$2 RETURNING id, trip_id, token, status, email, expires_at, created_at, updated_at`, status, token)
	var s domain.Share
	if err := row.Scan(&s.ID, &s.TripID, &s.Token, &s.Status, &s.Email, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGShareRepository) ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.Share, error) {
	rows, err := r.db.Query(ctx, `UPDATE shares SET status=$1, updated_at=now() WHERE status=$2 AND expires_at <= $3 RETURNING id, trip_id, token, status, email, expires_at, created_at, updated_at`, domain.ShareStatusExpired, domain.ShareStatusActive, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.Share
	for rows.Next() {
		var s domain.Share
		if err := rows.Scan(&s.ID, &s.TripID, &s.Token, &s.Status, &s.Email, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		expired = append(expired, s)
	}
	return expired, rows.Err()
}

var _ ShareRepository = (*PGShareRepository)(nil)
