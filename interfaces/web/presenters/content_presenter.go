package presenters

import (
	"cmsadmin/application"
	"cmsadmin/domain/cms"
)

// ContentRowView is one decorated content row of the admin list
type ContentRowView struct {
	ID          int64             `json:"id"`
	SiteID      int64             `json:"siteId"`
	ChannelID   int64             `json:"channelId"`
	Sequence    int               `json:"sequence"`
	Title       string            `json:"title"`
	IsChecked   bool              `json:"isChecked"`
	Values      map[string]string `json:"values"`
	PluginMenus []cms.Menu        `json:"pluginMenus"`
}

// CheckBoxView is a selectable review level
type CheckBoxView struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ContentListView is the JSON body returned by the content list endpoint
type ContentListView struct {
	PageContents  []*ContentRowView   `json:"pageContents"`
	Total         int                 `json:"total"`
	PageSize      int                 `json:"pageSize"`
	Columns       []cms.ContentColumn `json:"columns"`
	IsAllContents bool                `json:"isAllContents"`
	CheckedLevels []CheckBoxView      `json:"checkedLevels"`
	Permissions   cms.Permissions     `json:"permissions"`
}

// ContentPresenter shapes content list results for the admin UI.
type ContentPresenter struct{}

// NewContentPresenter creates a content presenter.
func NewContentPresenter() *ContentPresenter {
	return &ContentPresenter{}
}

// ToContentListView converts a list result to its response body. Collections are never
// nil so the client always receives arrays.
func (p *ContentPresenter) ToContentListView(result *application.ListResult) *ContentListView {
	if result == nil {
		return nil
	}

	view := &ContentListView{
		PageContents:  make([]*ContentRowView, 0, len(result.PageContents)),
		Total:         result.Total,
		PageSize:      result.PageSize,
		Columns:       result.Columns,
		IsAllContents: result.IsAllContents,
		CheckedLevels: make([]CheckBoxView, 0, len(result.CheckedLevels)),
		Permissions:   result.Permissions,
	}
	if view.Columns == nil {
		view.Columns = []cms.ContentColumn{}
	}

	for _, row := range result.PageContents {
		view.PageContents = append(view.PageContents, p.toRowView(row))
	}
	for _, level := range result.CheckedLevels {
		view.CheckedLevels = append(view.CheckedLevels, CheckBoxView{Label: level.Label, Value: level.Value})
	}

	return view
}

func (p *ContentPresenter) toRowView(row *cms.ContentRow) *ContentRowView {
	menus := row.PluginMenus
	if menus == nil {
		menus = []cms.Menu{}
	}
	values := row.Values
	if values == nil {
		values = map[string]string{}
	}

	return &ContentRowView{
		ID:          row.ID,
		SiteID:      row.SiteID,
		ChannelID:   row.ChannelID,
		Sequence:    row.Sequence,
		Title:       row.Title,
		IsChecked:   row.IsChecked,
		Values:      values,
		PluginMenus: menus,
	}
}
