package contracts

import (
	"context"

	"cmsadmin/domain/cms"
)

// SiteRepository defines read operations for Site entities.
type SiteRepository interface {
	// GetByID retrieves a site by its ID. Returns ErrNotFound if the site does not exist.
	GetByID(ctx context.Context, siteID int64) (*cms.Site, error)

	// ListAll retrieves all sites.
	ListAll(ctx context.Context) ([]*cms.Site, error)
}
