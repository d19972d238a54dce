package application

import (
	"context"
	"errors"
	"time"

	"cmsadmin/domain/contracts"
	"cmsadmin/logging"
)

// AuthService resolves session tokens into callers.
type AuthService struct {
	sessions    contracts.SessionRepository
	permissions contracts.PermissionRepository
	channels    contracts.ChannelRepository
	logger      *logging.Logger
	now         func() time.Time
}

// NewAuthService creates an auth service with repository dependency injection.
func NewAuthService(
	sessions contracts.SessionRepository,
	permissions contracts.PermissionRepository,
	channels contracts.ChannelRepository,
) *AuthService {
	return &AuthService{
		sessions:    sessions,
		permissions: permissions,
		channels:    channels,
		logger:      logging.Default().WithComponent("auth_service"),
		now:         time.Now,
	}
}

// Authenticate returns the caller owning the token. Unknown or expired tokens and
// locked out administrators yield a nil caller and no error.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Caller, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if errors.Is(err, contracts.ErrNotFound) {
		s.logger.Security("Unknown session token presented")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.now()) {
		s.logger.Security("Expired session token presented", "admin_id", session.AdminID)
		return nil, nil
	}

	admin, err := s.permissions.GetAdministrator(ctx, session.AdminID)
	if errors.Is(err, contracts.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if admin.IsLockedOut {
		s.logger.Security("Locked out administrator rejected", "admin_id", admin.ID)
		return nil, nil
	}

	return &Caller{
		Administrator: admin,
		Permissions:   NewAdminPermissions(admin, s.permissions, s.channels),
	}, nil
}

// IssueSession creates a session for the administrator.
func (s *AuthService) IssueSession(ctx context.Context, adminID int64, ttl time.Duration) (*contracts.Session, error) {
	if _, err := s.permissions.GetAdministrator(ctx, adminID); err != nil {
		return nil, err
	}
	return s.sessions.Create(ctx, adminID, ttl)
}

// PurgeExpiredSessions removes expired sessions.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Security("Expired sessions purged", "count", removed)
	}
	return removed, nil
}
