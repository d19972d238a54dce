package repositories

import (
	"context"
	"fmt"

	"cmsadmin/database"
	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// SqlcPermissionRepository implements contracts.PermissionRepository using sqlc queries.
type SqlcPermissionRepository struct {
	*BaseRepository
}

// NewSqlcPermissionRepository creates a new permission repository.
func NewSqlcPermissionRepository(database *database.Database) contracts.PermissionRepository {
	return &SqlcPermissionRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// GetAdministrator retrieves an administrator by ID.
func (r *SqlcPermissionRepository) GetAdministrator(ctx context.Context, adminID int64) (*contracts.Administrator, error) {
	row, err := r.ReadQueries().GetAdministratorByID(ctx, adminID)
	if err != nil {
		return nil, r.NotFound(err)
	}

	return &contracts.Administrator{
		ID:           row.AdminID,
		UserName:     row.UserName,
		DisplayName:  r.FromNullString(row.DisplayName),
		IsSuperAdmin: row.IsSuperAdmin,
		IsLockedOut:  row.IsLockedOut,
	}, nil
}

// SitePermissions returns the site capabilities granted to the administrator.
func (r *SqlcPermissionRepository) SitePermissions(ctx context.Context, adminID, siteID int64) (cms.CapabilitySet, error) {
	names, err := r.ReadQueries().ListSitePermissions(ctx, db.ListSitePermissionsParams{
		AdminID: adminID,
		SiteID:  siteID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load site permissions: %w", err)
	}
	return toCapabilitySet(names), nil
}

// ChannelPermissions returns the capabilities granted on exactly the given channels.
func (r *SqlcPermissionRepository) ChannelPermissions(ctx context.Context, adminID, siteID int64, channelIDs []int64) (cms.CapabilitySet, error) {
	if len(channelIDs) == 0 {
		return cms.NewCapabilitySet(), nil
	}

	names, err := r.ReadQueries().ListChannelPermissions(ctx, db.ListChannelPermissionsParams{
		AdminID:    adminID,
		SiteID:     siteID,
		ChannelIds: channelIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load channel permissions: %w", err)
	}
	return toCapabilitySet(names), nil
}

func toCapabilitySet(names []string) cms.CapabilitySet {
	set := make(cms.CapabilitySet, len(names))
	for _, name := range names {
		set.Add(cms.Capability(name))
	}
	return set
}
