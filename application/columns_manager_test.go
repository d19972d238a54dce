package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmsadmin/domain/cms"
	"cmsadmin/test/helpers"
)

func columnNames(columns []cms.ContentColumn) []string {
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.AttributeName)
	}
	return names
}

func listed(columns []cms.ContentColumn) []string {
	var names []string
	for _, c := range columns {
		if c.IsList {
			names = append(names, c.AttributeName)
		}
	}
	return names
}

func TestColumnsManager_GetContentListColumns_Defaults(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.ExpectNoPlugins()
	td := helpers.NewTestData()

	columns, err := NewColumnsManager(repos.Plugins).GetContentListColumns(helpers.TestContext(), td.SimpleSite(1, 20), td.SimpleChannel(2, 1), false)

	require.NoError(t, err)
	assert.Equal(t, cms.AttributeSequence, columns[0].AttributeName)
	assert.NotContains(t, columnNames(columns), cms.AttributeSubTitle)
	assert.Equal(t, []string{cms.AttributeSequence, cms.AttributeTitle, cms.AttributeAddDate}, listed(columns))
}

func TestColumnsManager_GetContentListColumns_IncludeAll(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.ExpectNoPlugins()
	td := helpers.NewTestData()
	channel := td.SimpleChannel(2, 1)
	channel.ListColumns = []string{"author", cms.AttributeHits}

	columns, err := NewColumnsManager(repos.Plugins).GetContentListColumns(helpers.TestContext(), td.ReviewSite(1, 20, 3), channel, true)

	require.NoError(t, err)
	names := columnNames(columns)
	assert.Contains(t, names, cms.AttributeSubTitle)
	assert.Contains(t, names, cms.AttributeAuthor)
	// Title is always listed and review state is forced on multi stage sites
	assert.ElementsMatch(t,
		[]string{cms.AttributeSequence, cms.AttributeTitle, cms.AttributeAuthor, cms.AttributeHits, cms.AttributeCheckState},
		listed(columns))
}

func TestColumnsManager_GetContentListColumns_PluginColumnsLast(t *testing.T) {
	repos := helpers.NewMockRepositories()
	td := helpers.NewTestData()
	repos.Plugins.On("ContentPluginIDs", mock.Anything).Return([]string{"statistics"})
	repos.Plugins.On("ContentColumns", []string{"statistics"}).Return([]cms.PluginColumn{
		{PluginID: "statistics", Name: "Hits", DisplayName: "Views"},
	})
	channel := td.SimpleChannel(2, 1)
	channel.ListColumns = []string{"statistics:Hits"}

	columns, err := NewColumnsManager(repos.Plugins).GetContentListColumns(helpers.TestContext(), td.SimpleSite(1, 20), channel, true)

	require.NoError(t, err)
	last := columns[len(columns)-1]
	assert.Equal(t, "statistics:Hits", last.AttributeName)
	assert.Equal(t, "Views", last.DisplayName)
	assert.True(t, last.IsList)
	assert.True(t, last.IsCalculate)
}

func TestColumnsManager_CalculateContentList(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.ExpectNoPlugins()
	td := helpers.NewTestData()
	manager := NewColumnsManager(repos.Plugins)
	columns, err := manager.GetContentListColumns(helpers.TestContext(), td.SimpleSite(1, 20), td.SimpleChannel(2, 1), true)
	require.NoError(t, err)

	edited := time.Date(2024, 4, 2, 18, 5, 0, 0, time.UTC)
	content := td.SimpleContent(1, cms.ContentSummary{ID: 42, ChannelID: 2})
	content.Author = "Ada"
	content.Hits = 17
	content.GroupNames = []string{"featured", "home"}
	content.LastEditDate = &edited
	content.CheckedLevel = -1

	row := manager.CalculateContentList(21, 2, content, columns, nil)

	assert.Equal(t, int64(42), row.ID)
	assert.Equal(t, 21, row.Sequence)
	assert.Equal(t, "21", row.Values[cms.AttributeSequence])
	assert.Equal(t, "42", row.Values[cms.AttributeID])
	assert.Equal(t, "Ada", row.Values[cms.AttributeAuthor])
	assert.Equal(t, "17", row.Values[cms.AttributeHits])
	assert.Equal(t, "featured, home", row.Values[cms.AttributeGroupNames])
	assert.Equal(t, "2024-03-01 09:30", row.Values[cms.AttributeAddDate])
	assert.Equal(t, "2024-04-02 18:05", row.Values[cms.AttributeLastEditDate])
	assert.Equal(t, "Rejected at level 1", row.Values[cms.AttributeCheckState])
	assert.NotContains(t, row.Values, "ChannelId")
}

func TestColumnsManager_CalculateContentList_PluginCalculators(t *testing.T) {
	td := helpers.NewTestData()
	manager := NewColumnsManager(nil)
	pluginColumns := []cms.PluginColumn{
		{PluginID: "p", Name: "Upper", Calculate: func(c *cms.Content) string { return "UP " + c.Title }},
		{PluginID: "p", Name: "Nothing"},
	}
	columns := []cms.ContentColumn{
		{AttributeName: cms.AttributeTitle},
		{AttributeName: "p:Upper"},
		{AttributeName: "p:Nothing"},
	}
	content := td.SimpleContent(1, cms.ContentSummary{ID: 3, ChannelID: 8})

	row := manager.CalculateContentList(1, 2, content, columns, pluginColumns)

	assert.Equal(t, "UP Content 3", row.Values["p:Upper"])
	assert.NotContains(t, row.Values, "p:Nothing")
	assert.Equal(t, "8", row.Values["ChannelId"])
}
