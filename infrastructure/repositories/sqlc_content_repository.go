package repositories

import (
	"context"
	"fmt"

	"cmsadmin/database"
	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// SqlcContentRepository implements contracts.ContentRepository using sqlc queries
// for fixed lookups and a composed query for search.
type SqlcContentRepository struct {
	*BaseRepository
}

// NewSqlcContentRepository creates a new content repository.
func NewSqlcContentRepository(database *database.Database) contracts.ContentRepository {
	return &SqlcContentRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// GetSummaries lists the channel's contents in listing order.
func (r *SqlcContentRepository) GetSummaries(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool) ([]cms.ContentSummary, error) {
	channelIDs, err := r.scopeChannelIDs(ctx, site, channel, includeDescendants)
	if err != nil {
		return nil, err
	}

	rows, err := r.ReadQueries().ListContentSummaries(ctx, db.ListContentSummariesParams{
		SiteID:     site.ID,
		ChannelIds: channelIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list content summaries: %w", err)
	}

	summaries := make([]cms.ContentSummary, len(rows))
	for i, row := range rows {
		summaries[i] = cms.ContentSummary{ID: row.ContentID, ChannelID: row.ChannelID}
	}
	return summaries, nil
}

// Search lists the contents matching the criteria in listing order.
func (r *SqlcContentRepository) Search(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool, criteria cms.SearchCriteria) ([]cms.ContentSummary, error) {
	channelIDs, err := r.scopeChannelIDs(ctx, site, channel, includeDescendants)
	if err != nil {
		return nil, err
	}

	query, args := buildSearchQuery(site.ID, channelIDs, criteria)

	rows, err := r.ReadDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search contents: %w", err)
	}
	defer rows.Close()

	summaries := []cms.ContentSummary{}
	for rows.Next() {
		var summary cms.ContentSummary
		if err := rows.Scan(&summary.ID, &summary.ChannelID); err != nil {
			return nil, fmt.Errorf("failed to scan content summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to search contents: %w", err)
	}
	return summaries, nil
}

// GetByID hydrates a content record with its group and tag names.
func (r *SqlcContentRepository) GetByID(ctx context.Context, site *cms.Site, channelID, contentID int64) (*cms.Content, error) {
	var content *cms.Content

	err := r.WithReadTx(func(q *db.Queries) error {
		row, err := q.GetContentByID(ctx, db.GetContentByIDParams{
			SiteID:    site.ID,
			ChannelID: channelID,
			ContentID: contentID,
		})
		if err != nil {
			return r.NotFound(err)
		}

		groupNames, err := q.ListContentGroupNames(ctx, contentID)
		if err != nil {
			return fmt.Errorf("failed to load content groups: %w", err)
		}

		tagNames, err := q.ListContentTagNames(ctx, contentID)
		if err != nil {
			return fmt.Errorf("failed to load content tags: %w", err)
		}

		content = r.toDomain(row, groupNames, tagNames)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return content, nil
}

// scopeChannelIDs resolves the channels a listing covers.
func (r *SqlcContentRepository) scopeChannelIDs(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool) ([]int64, error) {
	if channel.SiteID != site.ID {
		return nil, ErrSiteMismatch{Expected: site.ID, Actual: channel.SiteID}
	}

	if !includeDescendants {
		return []int64{channel.ID}, nil
	}

	channelIDs, err := r.ReadQueries().GetChannelDescendantIDs(ctx, db.GetChannelDescendantIDsParams{
		SiteID:    site.ID,
		ChannelID: channel.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve descendant channels: %w", err)
	}
	return channelIDs, nil
}

// toDomain transforms a SQLC row to a domain Content.
func (r *SqlcContentRepository) toDomain(row db.Content, groupNames, tagNames []string) *cms.Content {
	return &cms.Content{
		ID:               row.ContentID,
		SiteID:           row.SiteID,
		ChannelID:        row.ChannelID,
		Title:            row.Title,
		SubTitle:         r.FromNullString(row.SubTitle),
		Author:           r.FromNullString(row.Author),
		Source:           r.FromNullString(row.Source),
		Summary:          r.FromNullString(row.Summary),
		Body:             r.FromNullString(row.Body),
		ImageURL:         r.FromNullString(row.ImageUrl),
		LinkURL:          r.FromNullString(row.LinkUrl),
		Hits:             row.Hits,
		Taxis:            row.Taxis,
		GroupNames:       groupNames,
		TagNames:         tagNames,
		IsTop:            row.IsTop,
		IsRecommend:      row.IsRecommend,
		IsHot:            row.IsHot,
		IsColor:          row.IsColor,
		IsChecked:        row.IsChecked,
		CheckedLevel:     int(row.CheckedLevel),
		AddUserName:      r.FromNullString(row.AddUserName),
		LastEditUserName: r.FromNullString(row.LastEditUserName),
		AddDate:          r.FromNullTime(row.AddDate),
		LastEditDate:     r.FromNullTime(row.LastEditDate),
	}
}
