package application

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"cmsadmin/domain/cms"
)

const listDateFormat = "2006-01-02 15:04"

// builtinColumn describes a content attribute the admin list can show.
type builtinColumn struct {
	attribute    string
	displayName  string
	inputType    string
	isSearchable bool
	isCalculate  bool
	extended     bool // only listed when all columns are requested
}

var builtinColumns = []builtinColumn{
	{attribute: cms.AttributeTitle, displayName: "Title", inputType: "Text", isSearchable: true},
	{attribute: cms.AttributeSubTitle, displayName: "Subtitle", inputType: "Text", isSearchable: true, extended: true},
	{attribute: cms.AttributeAuthor, displayName: "Author", inputType: "Text", isSearchable: true, extended: true},
	{attribute: cms.AttributeSource, displayName: "Source", inputType: "Text", isSearchable: true, extended: true},
	{attribute: cms.AttributeID, displayName: "ID", inputType: "Number", isSearchable: true},
	{attribute: cms.AttributeAddDate, displayName: "Added", inputType: "DateTime"},
	{attribute: cms.AttributeLastEditDate, displayName: "Last edited", inputType: "DateTime"},
	{attribute: cms.AttributeAddUserName, displayName: "Added by", inputType: "Text", isSearchable: true, isCalculate: true},
	{attribute: cms.AttributeLastEditUserName, displayName: "Last edited by", inputType: "Text", isSearchable: true, isCalculate: true},
	{attribute: cms.AttributeGroupNames, displayName: "Groups", inputType: "Text", isCalculate: true},
	{attribute: cms.AttributeTagNames, displayName: "Tags", inputType: "Text", isCalculate: true},
	{attribute: cms.AttributeHits, displayName: "Hits", inputType: "Number"},
	{attribute: cms.AttributeCheckState, displayName: "Status", inputType: "Text", isCalculate: true},
}

var defaultListColumns = []string{cms.AttributeTitle, cms.AttributeAddDate}

// ColumnsManager resolves the admin list columns and projects contents onto them.
type ColumnsManager struct {
	plugins PluginManager
}

// NewColumnsManager creates a columns manager.
func NewColumnsManager(plugins PluginManager) *ColumnsManager {
	return &ColumnsManager{plugins: plugins}
}

// GetContentListColumns returns the ordered columns for the channel's content list.
// Plugin columns of the channel's plugins follow the built-in attributes.
func (m *ColumnsManager) GetContentListColumns(ctx context.Context, site *cms.Site, channel *cms.Channel, includeAll bool) ([]cms.ContentColumn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listColumns := channel.ListColumns
	if len(listColumns) == 0 {
		listColumns = defaultListColumns
	}

	columns := []cms.ContentColumn{{
		AttributeName: cms.AttributeSequence,
		DisplayName:   "#",
		InputType:     "Number",
		IsList:        true,
		IsCalculate:   true,
	}}

	for _, c := range builtinColumns {
		if c.extended && !includeAll {
			continue
		}
		columns = append(columns, cms.ContentColumn{
			AttributeName: c.attribute,
			DisplayName:   c.displayName,
			InputType:     c.inputType,
			IsList:        c.attribute == cms.AttributeTitle || containsFold(listColumns, c.attribute),
			IsSearchable:  c.isSearchable,
			IsCalculate:   c.isCalculate,
		})
	}

	if site.IsCheckContentLevel {
		// Review state is always listed on sites with multi-stage review
		for i := range columns {
			if columns[i].AttributeName == cms.AttributeCheckState {
				columns[i].IsList = true
			}
		}
	}

	pluginColumns := m.plugins.ContentColumns(m.plugins.ContentPluginIDs(channel))
	for _, pc := range pluginColumns {
		columns = append(columns, cms.ContentColumn{
			AttributeName: pc.AttributeName(),
			DisplayName:   pc.DisplayName,
			InputType:     "Text",
			IsList:        containsFold(listColumns, pc.AttributeName()) || containsFold(listColumns, pc.Name),
			IsCalculate:   true,
		})
	}

	return columns, nil
}

// CalculateContentList projects a content record onto the list columns.
func (m *ColumnsManager) CalculateContentList(sequence int, channelID int64, content *cms.Content, columns []cms.ContentColumn, pluginColumns []cms.PluginColumn) *cms.ContentRow {
	row := &cms.ContentRow{
		ID:        content.ID,
		SiteID:    content.SiteID,
		ChannelID: content.ChannelID,
		Sequence:  sequence,
		Title:     content.Title,
		IsChecked: content.IsChecked,
		Values:    make(map[string]string, len(columns)),
	}

	// Rows pulled in from descendant channels are marked with their channel
	if channelID != content.ChannelID {
		row.Values["ChannelId"] = strconv.FormatInt(content.ChannelID, 10)
	}

	calculators := make(map[string]func(*cms.Content) string, len(pluginColumns))
	for _, pc := range pluginColumns {
		calculators[pc.AttributeName()] = pc.Calculate
	}

	for _, column := range columns {
		if calculate, ok := calculators[column.AttributeName]; ok {
			if calculate != nil {
				row.Values[column.AttributeName] = calculate(content)
			}
			continue
		}
		row.Values[column.AttributeName] = attributeValue(sequence, content, column.AttributeName)
	}

	return row
}

func attributeValue(sequence int, content *cms.Content, attribute string) string {
	switch attribute {
	case cms.AttributeSequence:
		return strconv.Itoa(sequence)
	case cms.AttributeID:
		return strconv.FormatInt(content.ID, 10)
	case cms.AttributeTitle:
		return content.Title
	case cms.AttributeSubTitle:
		return content.SubTitle
	case cms.AttributeAuthor:
		return content.Author
	case cms.AttributeSource:
		return content.Source
	case cms.AttributeSummary:
		return content.Summary
	case cms.AttributeAddDate:
		return formatDate(content.AddDate)
	case cms.AttributeLastEditDate:
		return formatDate(content.LastEditDate)
	case cms.AttributeAddUserName:
		return content.AddUserName
	case cms.AttributeLastEditUserName:
		return content.LastEditUserName
	case cms.AttributeGroupNames:
		return strings.Join(content.GroupNames, ", ")
	case cms.AttributeTagNames:
		return strings.Join(content.TagNames, ", ")
	case cms.AttributeHits:
		return strconv.FormatInt(content.Hits, 10)
	case cms.AttributeCheckState:
		return cms.CheckStateLabel(content)
	default:
		return ""
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(listDateFormat)
}

func containsFold(values []string, target string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, target)
	})
}
