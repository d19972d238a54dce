package contracts

import (
	"context"

	"cmsadmin/domain/cms"
)

// ChannelRepository defines read operations for the channel tree.
type ChannelRepository interface {
	// GetByID retrieves a channel by its ID. Returns ErrNotFound if the channel does not exist.
	GetByID(ctx context.Context, channelID int64) (*cms.Channel, error)

	// AncestorIDs returns the IDs of the channel's ancestors, nearest first.
	AncestorIDs(ctx context.Context, channelID int64) ([]int64, error)

	// DescendantIDs returns the channel ID followed by every descendant channel ID.
	DescendantIDs(ctx context.Context, siteID, channelID int64) ([]int64, error)
}
