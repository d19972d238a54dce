package plugins

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cmsadmin/domain/cms"
)

const (
	StatisticsPluginID = "statistics"
	PreviewPluginID    = "preview"
)

// StatisticsPlugin reports hit counts.
type StatisticsPlugin struct{}

func NewStatisticsPlugin() *StatisticsPlugin { return &StatisticsPlugin{} }

func (p *StatisticsPlugin) ID() string { return StatisticsPluginID }

func (p *StatisticsPlugin) ContentColumns() []cms.PluginColumn {
	return []cms.PluginColumn{{
		PluginID:    StatisticsPluginID,
		Name:        "Hits",
		DisplayName: "Views",
		Calculate: func(content *cms.Content) string {
			return strconv.FormatInt(content.Hits, 10)
		},
	}}
}

func (p *StatisticsPlugin) ContentMenus(ctx context.Context, row *cms.ContentRow) ([]cms.Menu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []cms.Menu{{
		ID:        "statistics",
		Text:      "Statistics",
		Href:      fmt.Sprintf("/plugins/statistics/contents?siteId=%d&channelId=%d&contentId=%d", row.SiteID, row.ChannelID, row.ID),
		Target:    "_layer",
		IconClass: "ion-stats-bars",
	}}, nil
}

// PreviewPlugin links to the rendered page and reports the body length in words.
type PreviewPlugin struct{}

func NewPreviewPlugin() *PreviewPlugin { return &PreviewPlugin{} }

func (p *PreviewPlugin) ID() string { return PreviewPluginID }

func (p *PreviewPlugin) ContentColumns() []cms.PluginColumn {
	return []cms.PluginColumn{{
		PluginID:    PreviewPluginID,
		Name:        "WordCount",
		DisplayName: "Words",
		Calculate: func(content *cms.Content) string {
			return strconv.Itoa(len(strings.Fields(content.Body)))
		},
	}}
}

func (p *PreviewPlugin) ContentMenus(ctx context.Context, row *cms.ContentRow) ([]cms.Menu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []cms.Menu{{
		ID:     "preview",
		Text:   "Preview",
		Href:   fmt.Sprintf("/preview?siteId=%d&channelId=%d&contentId=%d", row.SiteID, row.ChannelID, row.ID),
		Target: "_blank",
	}}, nil
}
