package repositories

import (
	"context"

	"cmsadmin/database"
	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// SqlcChannelRepository implements contracts.ChannelRepository using sqlc queries.
type SqlcChannelRepository struct {
	*BaseRepository
}

// NewSqlcChannelRepository creates a new channel repository.
func NewSqlcChannelRepository(database *database.Database) contracts.ChannelRepository {
	return &SqlcChannelRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// GetByID retrieves a channel by its ID.
func (r *SqlcChannelRepository) GetByID(ctx context.Context, channelID int64) (*cms.Channel, error) {
	row, err := r.ReadQueries().GetChannelByID(ctx, channelID)
	if err != nil {
		return nil, r.NotFound(err)
	}

	return &cms.Channel{
		ID:                      row.ChannelID,
		SiteID:                  row.SiteID,
		ParentID:                row.ParentID,
		Name:                    row.ChannelName,
		IsAllContents:           row.IsAllContents,
		ContentModelPluginID:    r.FromNullString(row.ContentModelPluginID),
		ContentRelatedPluginIDs: r.FromNullStringList(row.ContentRelatedPluginIds),
		ListColumns:             r.FromNullStringList(row.ListColumns),
	}, nil
}

// AncestorIDs returns the IDs of the channel's ancestors, nearest first.
func (r *SqlcChannelRepository) AncestorIDs(ctx context.Context, channelID int64) ([]int64, error) {
	return r.ReadQueries().GetChannelAncestorIDs(ctx, channelID)
}

// DescendantIDs returns the channel ID followed by every descendant channel ID.
func (r *SqlcChannelRepository) DescendantIDs(ctx context.Context, siteID, channelID int64) ([]int64, error) {
	return r.ReadQueries().GetChannelDescendantIDs(ctx, db.GetChannelDescendantIDsParams{
		SiteID:    siteID,
		ChannelID: channelID,
	})
}
