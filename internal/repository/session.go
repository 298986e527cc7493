package repository

import (
	"context"
	"fmt"
	"time"
)

type SessionDAO interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionRepository tracks logged out tokens by their jti.
type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.dao.Revoke(ctx, jti, ttl); err != nil {
		return fmt.Errorf("r.dao.Revoke -> %w", err)
	}

	return nil
}

func (r *SessionRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	revoked, err := r.dao.IsRevoked(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsRevoked -> %w", err)
	}

	return revoked, nil
}
