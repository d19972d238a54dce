package application

import (
	"context"
	"fmt"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
)

// AdminPermissions evaluates stored permission grants for one administrator.
// Channel grants apply to the channel they are made on and to all of its descendants.
type AdminPermissions struct {
	admin       *contracts.Administrator
	permissions contracts.PermissionRepository
	channels    contracts.ChannelRepository
}

// NewAdminPermissions creates an evaluator bound to the administrator.
func NewAdminPermissions(
	admin *contracts.Administrator,
	permissions contracts.PermissionRepository,
	channels contracts.ChannelRepository,
) *AdminPermissions {
	return &AdminPermissions{
		admin:       admin,
		permissions: permissions,
		channels:    channels,
	}
}

// IsSuperAdmin reports whether the administrator holds every capability.
func (p *AdminPermissions) IsSuperAdmin() bool {
	return p.admin.IsSuperAdmin
}

// HasSitePermissions reports whether any of the site capabilities is held.
func (p *AdminPermissions) HasSitePermissions(ctx context.Context, siteID int64, caps ...cms.Capability) (bool, error) {
	if p.IsSuperAdmin() {
		return true, nil
	}

	granted, err := p.permissions.SitePermissions(ctx, p.admin.ID, siteID)
	if err != nil {
		return false, err
	}
	return granted.Intersects(caps...), nil
}

// HasChannelPermissions reports whether any of the channel capabilities is held on
// the channel or one of its ancestors.
func (p *AdminPermissions) HasChannelPermissions(ctx context.Context, siteID, channelID int64, caps ...cms.Capability) (bool, error) {
	if p.IsSuperAdmin() {
		return true, nil
	}

	ancestors, err := p.channels.AncestorIDs(ctx, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve channel ancestors: %w", err)
	}

	granted, err := p.permissions.ChannelPermissions(ctx, p.admin.ID, siteID, append([]int64{channelID}, ancestors...))
	if err != nil {
		return false, err
	}
	return granted.Intersects(caps...), nil
}
