package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cmsadmin/database"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// SqlcSessionRepository implements contracts.SessionRepository using sqlc queries.
type SqlcSessionRepository struct {
	*BaseRepository
	now func() time.Time
}

// NewSqlcSessionRepository creates a new session repository.
func NewSqlcSessionRepository(database *database.Database) contracts.SessionRepository {
	return &SqlcSessionRepository{
		BaseRepository: NewBaseRepository(database),
		now:            time.Now,
	}
}

// GetByToken retrieves a session by its access token.
func (r *SqlcSessionRepository) GetByToken(ctx context.Context, token string) (*contracts.Session, error) {
	row, err := r.ReadQueries().GetAdminSession(ctx, token)
	if err != nil {
		return nil, r.NotFound(err)
	}
	return toSession(row), nil
}

// Create issues a new random session token for the administrator.
func (r *SqlcSessionRepository) Create(ctx context.Context, adminID int64, ttl time.Duration) (*contracts.Session, error) {
	now := r.now().UTC()

	row, err := r.WriteQueries().CreateAdminSession(ctx, db.CreateAdminSessionParams{
		Token:     uuid.NewString(),
		AdminID:   adminID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return toSession(row), nil
}

// PurgeExpired deletes sessions that expired before now and returns how many were removed.
func (r *SqlcSessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	return r.WriteQueries().DeleteExpiredAdminSessions(ctx, r.now().UTC())
}

func toSession(row db.AdminSession) *contracts.Session {
	return &contracts.Session{
		Token:     row.Token,
		AdminID:   row.AdminID,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
}
