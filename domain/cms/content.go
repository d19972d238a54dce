package cms

import "time"

// ContentSummary is the identifier-only projection used for counting and paging.
type ContentSummary struct {
	ID        int64
	ChannelID int64
}

// Content is a fully hydrated content record.
type Content struct {
	ID        int64
	SiteID    int64
	ChannelID int64

	Title      string
	SubTitle   string
	Author     string
	Source     string
	Summary    string
	Body       string
	ImageURL   string
	LinkURL    string
	Hits       int64
	Taxis      int64
	GroupNames []string
	TagNames   []string

	IsTop       bool
	IsRecommend bool
	IsHot       bool
	IsColor     bool

	IsChecked    bool
	CheckedLevel int

	AddUserName      string
	LastEditUserName string
	AddDate          *time.Time
	LastEditDate     *time.Time
}

// ToSummary returns the paging projection of the record.
func (c *Content) ToSummary() ContentSummary {
	return ContentSummary{ID: c.ID, ChannelID: c.ChannelID}
}

// ContentRow is a content record decorated for the admin list.
type ContentRow struct {
	ID        int64             `json:"id"`
	SiteID    int64             `json:"siteId"`
	ChannelID int64             `json:"channelId"`
	Sequence  int               `json:"sequence"`
	Title     string            `json:"title"`
	IsChecked bool              `json:"isChecked"`
	Values    map[string]string `json:"values"`

	// Menus contributed by the channel's plugins, attached after column calculation.
	PluginMenus []Menu `json:"pluginMenus,omitempty"`
}
