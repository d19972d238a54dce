package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/logging"
)

// DefaultDecorationConcurrency bounds the per-row lookups issued at once when no limit is configured.
const DefaultDecorationConcurrency = 8

// ListRequest holds the parameters of an admin content list query.
type ListRequest struct {
	SiteID        int64
	ChannelID     int64
	IsAllContents bool
	Page          int

	SearchType    string
	SearchText    string
	IsAdvanced    bool
	CheckedLevels []int
	IsTop         bool
	IsRecommend   bool
	IsHot         bool
	IsColor       bool
	GroupNames    []string
	TagNames      []string
}

// Criteria returns the search filters carried by the request.
func (r ListRequest) Criteria() cms.SearchCriteria {
	return cms.SearchCriteria{
		SearchType:    r.SearchType,
		SearchText:    r.SearchText,
		IsAdvanced:    r.IsAdvanced,
		CheckedLevels: r.CheckedLevels,
		IsTop:         r.IsTop,
		IsRecommend:   r.IsRecommend,
		IsHot:         r.IsHot,
		IsColor:       r.IsColor,
		GroupNames:    r.GroupNames,
		TagNames:      r.TagNames,
	}
}

// ListResult is one page of decorated contents with the caller's capabilities.
type ListResult struct {
	PageContents  []*cms.ContentRow
	Total         int
	PageSize      int
	Columns       []cms.ContentColumn
	IsAllContents bool
	CheckedLevels []cms.CheckBox
	Permissions   cms.Permissions
}

// ContentListService lists a channel's contents for the admin backend.
type ContentListService struct {
	sites    contracts.SiteRepository
	channels contracts.ChannelRepository
	contents contracts.ContentRepository

	plugins PluginManager
	columns *ColumnsManager
	checks  *CheckManager

	concurrency int
	logger      *logging.Logger
}

// NewContentListService creates a content list service with repository dependency injection.
func NewContentListService(
	sites contracts.SiteRepository,
	channels contracts.ChannelRepository,
	contents contracts.ContentRepository,
	plugins PluginManager,
	concurrency int,
) *ContentListService {
	if concurrency <= 0 {
		concurrency = DefaultDecorationConcurrency
	}

	return &ContentListService{
		sites:       sites,
		channels:    channels,
		contents:    contents,
		plugins:     plugins,
		columns:     NewColumnsManager(plugins),
		checks:      NewCheckManager(),
		concurrency: concurrency,
		logger:      logging.Default().WithComponent("content_list"),
	}
}

// List returns the requested page of contents.
//
// Failures are checked in order: ErrUnauthorized, ErrSiteNotFound, ErrChannelNotResolved.
// Repository and permission lookup errors are returned as is.
func (s *ContentListService) List(ctx context.Context, caller *Caller, req ListRequest) (*ListResult, error) {
	started := time.Now()
	logger := s.logger.WithContext(ctx)

	if err := s.authorize(ctx, caller, req); err != nil {
		return nil, err
	}

	site, err := s.sites.GetByID(ctx, req.SiteID)
	if errors.Is(err, contracts.ErrNotFound) {
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}

	channel, err := s.channels.GetByID(ctx, req.ChannelID)
	if errors.Is(err, contracts.ErrNotFound) {
		return nil, ErrChannelNotResolved
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}

	pluginIDs := s.plugins.ContentPluginIDs(channel)
	pluginColumns := s.plugins.ContentColumns(pluginIDs)

	columns, err := s.columns.GetContentListColumns(ctx, site, channel, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve columns: %w", err)
	}

	criteria := req.Criteria()
	var summaries []cms.ContentSummary
	if criteria.IsSearch() {
		logger.Content("Searching contents", site.ID, channel.ID,
			"search_type", criteria.SearchType, "advanced", criteria.IsAdvanced)
		summaries, err = s.contents.Search(ctx, site, channel, channel.IsAllContents, criteria)
	} else {
		summaries, err = s.contents.GetSummaries(ctx, site, channel, channel.IsAllContents)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contents: %w", err)
	}

	total := len(summaries)
	pageContents := []*cms.ContentRow{}

	if total > 0 {
		offset, pageSummaries := Paginate(summaries, req.Page, site.PageSize)

		pageContents, err = s.hydrate(ctx, site, pageSummaries, offset, req.ChannelID, columns, pluginColumns)
		if err != nil {
			return nil, err
		}

		if err := s.attachMenus(ctx, pluginIDs, pageContents); err != nil {
			return nil, err
		}
	}

	isChecked, checkedLevel, err := s.checks.GetUserCheckLevel(ctx, caller.Permissions, site, req.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve check level: %w", err)
	}
	checkedLevels := s.checks.CheckedLevels(site, isChecked, checkedLevel, true)

	permissions, err := s.permissionSnapshot(ctx, caller.Permissions, site.ID, channel.ID)
	if err != nil {
		return nil, err
	}

	logger.Performance("content_list", time.Since(started),
		slog.Int64("site_id", site.ID),
		slog.Int64("channel_id", channel.ID),
		slog.Bool("search", criteria.IsSearch()),
		slog.Int("total", total),
		slog.Int("rows", len(pageContents)),
	)

	return &ListResult{
		PageContents:  pageContents,
		Total:         total,
		PageSize:      site.PageSize,
		Columns:       columns,
		IsAllContents: channel.IsAllContents,
		CheckedLevels: checkedLevels,
		Permissions:   permissions,
	}, nil
}

// authorize requires a signed in caller with site content access and at least one
// content capability on the channel. It runs before any data access.
func (s *ContentListService) authorize(ctx context.Context, caller *Caller, req ListRequest) error {
	if !caller.IsAdminLoggedIn() {
		s.logger.Security("Anonymous content list request rejected", "site_id", req.SiteID, "channel_id", req.ChannelID)
		return ErrUnauthorized
	}

	hasSite, err := caller.Permissions.HasSitePermissions(ctx, req.SiteID, cms.SitePermissionContents)
	if err != nil {
		return fmt.Errorf("failed to check site permissions: %w", err)
	}
	if !hasSite {
		s.logger.Security("Content list denied: missing site permission",
			"admin_id", caller.Administrator.ID, "site_id", req.SiteID)
		return ErrUnauthorized
	}

	hasChannel, err := caller.Permissions.HasChannelPermissions(ctx, req.SiteID, req.ChannelID, cms.ContentListCapabilities...)
	if err != nil {
		return fmt.Errorf("failed to check channel permissions: %w", err)
	}
	if !hasChannel {
		s.logger.Security("Content list denied: missing channel permission",
			"admin_id", caller.Administrator.ID, "site_id", req.SiteID, "channel_id", req.ChannelID)
		return ErrUnauthorized
	}

	return nil
}

// Paginate returns the offset of the requested 1-based page and its slice of summaries.
// Pages below 1 are treated as the first page; pages past the end are empty.
func Paginate(summaries []cms.ContentSummary, page, pageSize int) (int, []cms.ContentSummary) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return 0, nil
	}

	offset := pageSize * (page - 1)
	if offset >= len(summaries) {
		return offset, nil
	}

	end := min(offset+pageSize, len(summaries))
	return offset, summaries[offset:end]
}

// hydrate fetches the full records of a page and projects them onto the columns.
// Records deleted since the summary query are dropped; sequence numbers continue
// from offset+1 over the surviving rows only.
func (s *ContentListService) hydrate(
	ctx context.Context,
	site *cms.Site,
	summaries []cms.ContentSummary,
	offset int,
	channelID int64,
	columns []cms.ContentColumn,
	pluginColumns []cms.PluginColumn,
) ([]*cms.ContentRow, error) {
	fetched := make([]*cms.Content, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, summary := range summaries {
		g.Go(func() error {
			content, err := s.contents.GetByID(gctx, site, summary.ChannelID, summary.ID)
			if errors.Is(err, contracts.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load content %d: %w", summary.ID, err)
			}
			fetched[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]*cms.ContentRow, 0, len(fetched))
	sequence := offset + 1
	for i, content := range fetched {
		if content == nil {
			s.logger.Debug("Content vanished before hydration, skipping",
				"site_id", site.ID, "channel_id", summaries[i].ChannelID, "content_id", summaries[i].ID)
			continue
		}
		rows = append(rows, s.columns.CalculateContentList(sequence, channelID, content, columns, pluginColumns))
		sequence++
	}

	return rows, nil
}

// attachMenus resolves the plugin menus of every row.
func (s *ContentListService) attachMenus(ctx context.Context, pluginIDs []string, rows []*cms.ContentRow) error {
	if len(pluginIDs) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, row := range rows {
		g.Go(func() error {
			menus, err := s.plugins.ContentMenus(gctx, pluginIDs, row)
			if err != nil {
				return fmt.Errorf("failed to load plugin menus for content %d: %w", row.ID, err)
			}
			row.PluginMenus = menus
			return nil
		})
	}
	return g.Wait()
}

// permissionSnapshot evaluates the caller's list capabilities. The checks are
// independent and run concurrently.
func (s *ContentListService) permissionSnapshot(ctx context.Context, perms PermissionEvaluator, siteID, channelID int64) (cms.Permissions, error) {
	var (
		p                      cms.Permissions
		createSite, createPage bool
	)

	channelChecks := []struct {
		capability cms.Capability
		target     *bool
	}{
		{cms.ChannelPermissionContentAdd, &p.IsAdd},
		{cms.ChannelPermissionContentDelete, &p.IsDelete},
		{cms.ChannelPermissionContentEdit, &p.IsEdit},
		{cms.ChannelPermissionContentArrange, &p.IsArrange},
		{cms.ChannelPermissionContentTranslate, &p.IsTranslate},
		{cms.ChannelPermissionContentCheckLevel1, &p.IsCheck},
		{cms.ChannelPermissionChannelEdit, &p.IsChannelEdit},
		{cms.ChannelPermissionCreatePage, &createPage},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, check := range channelChecks {
		g.Go(func() error {
			held, err := perms.HasChannelPermissions(gctx, siteID, channelID, check.capability)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", check.capability, err)
			}
			*check.target = held
			return nil
		})
	}
	g.Go(func() error {
		held, err := perms.HasSitePermissions(gctx, siteID, cms.SitePermissionCreateContents)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", cms.SitePermissionCreateContents, err)
		}
		createSite = held
		return nil
	})
	if err := g.Wait(); err != nil {
		return cms.Permissions{}, err
	}

	p.IsCreate = createSite || createPage
	return p, nil
}
