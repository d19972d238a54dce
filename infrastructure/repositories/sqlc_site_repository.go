package repositories

import (
	"context"

	"cmsadmin/database"
	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// SqlcSiteRepository implements contracts.SiteRepository using sqlc queries with read/write separation.
type SqlcSiteRepository struct {
	*BaseRepository
	defaultPageSize int
}

// NewSqlcSiteRepository creates a new site repository. Sites stored without a
// positive page size are given defaultPageSize.
func NewSqlcSiteRepository(database *database.Database, defaultPageSize int) contracts.SiteRepository {
	return &SqlcSiteRepository{
		BaseRepository:  NewBaseRepository(database),
		defaultPageSize: defaultPageSize,
	}
}

// GetByID retrieves a site by its ID.
func (r *SqlcSiteRepository) GetByID(ctx context.Context, siteID int64) (*cms.Site, error) {
	siteRow, err := r.ReadQueries().GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, r.NotFound(err)
	}
	return r.toDomain(siteRow), nil
}

// ListAll retrieves all sites.
func (r *SqlcSiteRepository) ListAll(ctx context.Context) ([]*cms.Site, error) {
	siteRows, err := r.ReadQueries().ListSites(ctx)
	if err != nil {
		return nil, err
	}

	sites := make([]*cms.Site, len(siteRows))
	for i, row := range siteRows {
		sites[i] = r.toDomain(row)
	}
	return sites, nil
}

// toDomain transforms a SQLC row to a domain Site.
func (r *SqlcSiteRepository) toDomain(row db.Site) *cms.Site {
	pageSize := int(row.PageSize)
	if pageSize <= 0 {
		pageSize = r.defaultPageSize
	}

	return &cms.Site{
		ID:                  row.SiteID,
		Name:                row.SiteName,
		Dir:                 row.SiteDir,
		PageSize:            pageSize,
		IsCheckContentLevel: row.IsCheckContentLevel,
		CheckContentLevel:   int(row.CheckContentLevel),
	}
}
