package repositories

import (
	"context"
	"fmt"
	"time"

	"cmsadmin/database"
	"cmsadmin/domain/cms"
	"cmsadmin/gen/db"
)

// SeedResult holds the identifiers created by DemoSeeder.
type SeedResult struct {
	SiteID         int64
	RootChannelID  int64
	NewsChannelID  int64
	EventChannelID int64
	SuperAdminID   int64
	EditorID       int64
	ContentIDs     []int64
}

// DemoSeeder writes a small demo site: a channel tree, contents spread over it,
// a super administrator and an editor limited to viewing and adding contents.
type DemoSeeder struct {
	*BaseRepository
	ContentsPerChannel int
}

// NewDemoSeeder creates a seeder writing through the serialized write connection.
func NewDemoSeeder(database *database.Database) *DemoSeeder {
	return &DemoSeeder{
		BaseRepository:     NewBaseRepository(database),
		ContentsPerChannel: 15,
	}
}

// Seed inserts the demo data in a single transaction.
func (s *DemoSeeder) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	err := s.WithTx(func(q *db.Queries) error {
		var err error

		result.SiteID, err = q.InsertSite(ctx, db.InsertSiteParams{
			SiteName:            "Demo Site",
			SiteDir:             "demo",
			PageSize:            20,
			IsCheckContentLevel: true,
			CheckContentLevel:   3,
		})
		if err != nil {
			return fmt.Errorf("insert site: %w", err)
		}

		result.RootChannelID, err = q.InsertChannel(ctx, db.InsertChannelParams{
			SiteID:        result.SiteID,
			ChannelName:   "Home",
			IsAllContents: true,
		})
		if err != nil {
			return fmt.Errorf("insert root channel: %w", err)
		}

		result.NewsChannelID, err = q.InsertChannel(ctx, db.InsertChannelParams{
			SiteID:                  result.SiteID,
			ParentID:                result.RootChannelID,
			ChannelName:             "News",
			ContentModelPluginID:    s.ToNullString("statistics"),
			ContentRelatedPluginIds: s.ToNullStringList([]string{"preview"}),
			ListColumns:             s.ToNullStringList([]string{cms.AttributeTitle, cms.AttributeAddDate, cms.AttributeHits}),
			Taxis:                   1,
		})
		if err != nil {
			return fmt.Errorf("insert news channel: %w", err)
		}

		result.EventChannelID, err = q.InsertChannel(ctx, db.InsertChannelParams{
			SiteID:      result.SiteID,
			ParentID:    result.NewsChannelID,
			ChannelName: "Events",
			Taxis:       2,
		})
		if err != nil {
			return fmt.Errorf("insert events channel: %w", err)
		}

		for _, channelID := range []int64{result.NewsChannelID, result.EventChannelID} {
			ids, err := s.seedContents(ctx, q, result.SiteID, channelID)
			if err != nil {
				return err
			}
			result.ContentIDs = append(result.ContentIDs, ids...)
		}

		result.SuperAdminID, err = q.InsertAdministrator(ctx, db.InsertAdministratorParams{
			UserName:     "admin",
			DisplayName:  s.ToNullString("Site Owner"),
			IsSuperAdmin: true,
		})
		if err != nil {
			return fmt.Errorf("insert super admin: %w", err)
		}

		result.EditorID, err = q.InsertAdministrator(ctx, db.InsertAdministratorParams{
			UserName:    "editor",
			DisplayName: s.ToNullString("Content Editor"),
		})
		if err != nil {
			return fmt.Errorf("insert editor: %w", err)
		}

		if err := q.GrantSitePermission(ctx, db.GrantSitePermissionParams{
			AdminID:    result.EditorID,
			SiteID:     result.SiteID,
			Permission: string(cms.SitePermissionContents),
		}); err != nil {
			return fmt.Errorf("grant site permission: %w", err)
		}

		// Granted on the root channel; the editor inherits them on every descendant
		for _, capability := range []cms.Capability{cms.ChannelPermissionContentView, cms.ChannelPermissionContentAdd} {
			if err := q.GrantChannelPermission(ctx, db.GrantChannelPermissionParams{
				AdminID:    result.EditorID,
				SiteID:     result.SiteID,
				ChannelID:  result.RootChannelID,
				Permission: string(capability),
			}); err != nil {
				return fmt.Errorf("grant channel permission: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *DemoSeeder) seedContents(ctx context.Context, q *db.Queries, siteID, channelID int64) ([]int64, error) {
	groups := []string{"Featured", "Archive"}
	tags := []string{"release", "community", "security"}
	base := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	ids := make([]int64, 0, s.ContentsPerChannel)
	for i := 0; i < s.ContentsPerChannel; i++ {
		added := base.Add(time.Duration(i) * 24 * time.Hour)

		checked := i%2 == 0
		level := int64(i % 3)
		if checked {
			level = 3
		}

		id, err := q.InsertContent(ctx, db.InsertContentParams{
			SiteID:       siteID,
			ChannelID:    channelID,
			Title:        fmt.Sprintf("Article %d-%d", channelID, i+1),
			Author:       s.ToNullString("Newsroom"),
			Summary:      s.ToNullString("Demo summary"),
			Body:         s.ToNullString("Demo body text for the content list preview"),
			Hits:         int64(i * 7),
			Taxis:        int64(i + 1),
			IsTop:        i == 0,
			IsRecommend:  i%3 == 0,
			IsHot:        i%4 == 0,
			IsColor:      i%5 == 0,
			IsChecked:    checked,
			CheckedLevel: level,
			AddUserName:  s.ToNullString("admin"),
			AddDate:      s.ToNullTime(&added),
			LastEditDate: s.ToNullTime(&added),
		})
		if err != nil {
			return nil, fmt.Errorf("insert content: %w", err)
		}

		if err := q.AddContentGroup(ctx, db.AddContentGroupParams{ContentID: id, GroupName: groups[i%len(groups)]}); err != nil {
			return nil, fmt.Errorf("add content group: %w", err)
		}
		if err := q.AddContentTag(ctx, db.AddContentTagParams{ContentID: id, TagName: tags[i%len(tags)]}); err != nil {
			return nil, fmt.Errorf("add content tag: %w", err)
		}

		ids = append(ids, id)
	}
	return ids, nil
}
