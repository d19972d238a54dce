package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmsadmin/domain/contracts"
	"cmsadmin/test/helpers"
)

func newTestAuthService(repos *helpers.MockRepositories, now time.Time) *AuthService {
	service := NewAuthService(repos.Session, repos.Permission, repos.Channel)
	service.now = func() time.Time { return now }
	return service
}

func TestAuthService_Authenticate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	valid := &contracts.Session{Token: "valid", AdminID: 3, ExpiresAt: now.Add(time.Hour)}
	expired := &contracts.Session{Token: "expired", AdminID: 3, ExpiresAt: now.Add(-time.Minute)}

	tests := []struct {
		name      string
		token     string
		setup     func(repos *helpers.MockRepositories)
		wantAdmin bool
	}{
		{
			name:  "empty_token",
			token: "",
			setup: func(*helpers.MockRepositories) {},
		},
		{
			name:  "unknown_token",
			token: "nope",
			setup: func(repos *helpers.MockRepositories) {
				repos.Session.On("GetByToken", mock.Anything, "nope").Return(nil, contracts.ErrNotFound)
			},
		},
		{
			name:  "expired_session",
			token: "expired",
			setup: func(repos *helpers.MockRepositories) {
				repos.Session.On("GetByToken", mock.Anything, "expired").Return(expired, nil)
			},
		},
		{
			name:  "locked_out_admin",
			token: "valid",
			setup: func(repos *helpers.MockRepositories) {
				repos.Session.On("GetByToken", mock.Anything, "valid").Return(valid, nil)
				repos.Permission.On("GetAdministrator", mock.Anything, int64(3)).
					Return(&contracts.Administrator{ID: 3, IsLockedOut: true}, nil)
			},
		},
		{
			name:  "valid_session",
			token: "valid",
			setup: func(repos *helpers.MockRepositories) {
				repos.Session.On("GetByToken", mock.Anything, "valid").Return(valid, nil)
				repos.Permission.On("GetAdministrator", mock.Anything, int64(3)).
					Return(&contracts.Administrator{ID: 3, UserName: "editor"}, nil)
			},
			wantAdmin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := helpers.NewMockRepositories()
			tt.setup(repos)

			caller, err := newTestAuthService(repos, now).Authenticate(helpers.TestContext(), tt.token)

			require.NoError(t, err)
			if tt.wantAdmin {
				require.NotNil(t, caller)
				assert.True(t, caller.IsAdminLoggedIn())
				assert.Equal(t, "editor", caller.Administrator.UserName)
			} else {
				assert.Nil(t, caller)
				assert.False(t, caller.IsAdminLoggedIn())
			}
			repos.AssertAllExpectations(t)
		})
	}
}

func TestAuthService_IssueSession(t *testing.T) {
	repos := helpers.NewMockRepositories()
	session := &contracts.Session{Token: "t", AdminID: 3}
	repos.Permission.On("GetAdministrator", mock.Anything, int64(3)).Return(&contracts.Administrator{ID: 3}, nil)
	repos.Session.On("Create", mock.Anything, int64(3), time.Hour).Return(session, nil)

	issued, err := newTestAuthService(repos, time.Now()).IssueSession(helpers.TestContext(), 3, time.Hour)

	require.NoError(t, err)
	assert.Equal(t, session, issued)
}

func TestAuthService_IssueSession_UnknownAdmin(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.Permission.On("GetAdministrator", mock.Anything, int64(99)).Return(nil, contracts.ErrNotFound)

	_, err := newTestAuthService(repos, time.Now()).IssueSession(helpers.TestContext(), 99, time.Hour)

	assert.ErrorIs(t, err, contracts.ErrNotFound)
	repos.Session.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.Session.On("PurgeExpired", mock.Anything).Return(int64(4), nil)

	removed, err := newTestAuthService(repos, time.Now()).PurgeExpiredSessions(helpers.TestContext())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}

func TestCallerContext(t *testing.T) {
	assert.Nil(t, CallerFromContext(helpers.TestContext()))

	caller := &Caller{Administrator: &contracts.Administrator{ID: 1}, Permissions: &helpers.FakePermissions{}}
	ctx := WithCaller(helpers.TestContext(), caller)

	assert.Same(t, caller, CallerFromContext(ctx))
}
