package contracts

import (
	"context"

	"cmsadmin/domain/cms"
)

// ContentRepository defines read operations for content records.
// Summary results are ordered top first, then by descending taxis and ID.
type ContentRepository interface {
	// GetSummaries lists the channel's contents, including those of descendant
	// channels when includeDescendants is set.
	GetSummaries(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool) ([]cms.ContentSummary, error)

	// Search lists the contents matching the criteria within the same scope as GetSummaries.
	Search(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool, criteria cms.SearchCriteria) ([]cms.ContentSummary, error)

	// GetByID hydrates a full record. Returns ErrNotFound if it no longer exists.
	GetByID(ctx context.Context, site *cms.Site, channelID, contentID int64) (*cms.Content, error)
}
