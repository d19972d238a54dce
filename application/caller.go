package application

import (
	"context"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
)

// PermissionEvaluator answers capability questions for one administrator.
// Every call is an independent lookup; answers are not cached.
type PermissionEvaluator interface {
	// IsSuperAdmin reports whether the administrator holds every capability.
	IsSuperAdmin() bool

	// HasSitePermissions reports whether any of the site capabilities is held.
	HasSitePermissions(ctx context.Context, siteID int64, caps ...cms.Capability) (bool, error)

	// HasChannelPermissions reports whether any of the channel capabilities is held
	// on the channel or inherited from one of its ancestors.
	HasChannelPermissions(ctx context.Context, siteID, channelID int64, caps ...cms.Capability) (bool, error)
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	Administrator *contracts.Administrator
	Permissions   PermissionEvaluator
}

// IsAdminLoggedIn reports whether the caller is a signed in administrator.
func (c *Caller) IsAdminLoggedIn() bool {
	return c != nil && c.Administrator != nil && c.Permissions != nil
}

type callerKey struct{}

// WithCaller returns a context carrying the caller.
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored on the context, or nil for anonymous requests.
func CallerFromContext(ctx context.Context) *Caller {
	caller, _ := ctx.Value(callerKey{}).(*Caller)
	return caller
}
