package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cmsadmin/application"
	"cmsadmin/domain/contracts"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*application.Caller, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Caller), args.Error(1)
}

func serveWithSession(auth Authenticator, req *http.Request) (*httptest.ResponseRecorder, *application.Caller) {
	var seen *application.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = application.CallerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	Session(auth, "cms_admin_session")(next).ServeHTTP(w, req)
	return w, seen
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		expected string
	}{
		{name: "none", expected: ""},
		{name: "bearer", header: "Bearer abc", expected: "abc"},
		{name: "bearer_case_insensitive", header: "bearer  abc ", expected: "abc"},
		{name: "basic_ignored", header: "Basic dXNlcjpwYXNz", expected: ""},
		{name: "cookie", cookie: "from-cookie", expected: "from-cookie"},
		{name: "header_wins", header: "Bearer from-header", cookie: "from-cookie", expected: "from-header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "cms_admin_session", Value: tt.cookie})
			}
			assert.Equal(t, tt.expected, TokenFromRequest(req, "cms_admin_session"))
		})
	}
}

func TestSession_AttachesCaller(t *testing.T) {
	auth := &MockAuthenticator{}
	caller := &application.Caller{Administrator: &contracts.Administrator{ID: 2}}
	auth.On("Authenticate", mock.Anything, "abc").Return(caller, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w, seen := serveWithSession(auth, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Same(t, caller, seen)
}

func TestSession_AnonymousWithoutToken(t *testing.T) {
	auth := &MockAuthenticator{}

	w, seen := serveWithSession(auth, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, seen)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestSession_AnonymousWithUnknownToken(t *testing.T) {
	auth := &MockAuthenticator{}
	auth.On("Authenticate", mock.Anything, "stale").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cms_admin_session", Value: "stale"})
	w, seen := serveWithSession(auth, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, seen)
}

func TestSession_LookupFailure(t *testing.T) {
	auth := &MockAuthenticator{}
	auth.On("Authenticate", mock.Anything, "abc").Return(nil, errors.New("database is locked"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w, seen := serveWithSession(auth, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Nil(t, seen)
}
