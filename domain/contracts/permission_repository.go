package contracts

import (
	"context"
	"time"

	"cmsadmin/domain/cms"
)

// Administrator is an admin account able to sign in to the backend.
type Administrator struct {
	ID           int64
	UserName     string
	DisplayName  string
	IsSuperAdmin bool
	IsLockedOut  bool
}

// PermissionRepository defines lookups against stored permission grants.
type PermissionRepository interface {
	// GetAdministrator retrieves an administrator by ID. Returns ErrNotFound if absent.
	GetAdministrator(ctx context.Context, adminID int64) (*Administrator, error)

	// SitePermissions returns the site capabilities granted to the administrator.
	SitePermissions(ctx context.Context, adminID, siteID int64) (cms.CapabilitySet, error)

	// ChannelPermissions returns the capabilities granted on exactly the given channels.
	ChannelPermissions(ctx context.Context, adminID, siteID int64, channelIDs []int64) (cms.CapabilitySet, error)
}

// Session is an authenticated admin session.
type Session struct {
	Token     string
	AdminID   int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is no longer valid at the given time.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository defines operations for admin sessions.
type SessionRepository interface {
	// GetByToken retrieves a session. Returns ErrNotFound if the token is unknown.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// Create issues a new session for the administrator.
	Create(ctx context.Context, adminID int64, ttl time.Duration) (*Session, error)

	// PurgeExpired deletes expired sessions and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
