package plugins

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsadmin/domain/cms"
)

type failingPlugin struct{}

func (failingPlugin) ID() string { return "broken" }
func (failingPlugin) ContentColumns() []cms.PluginColumn { return nil }
func (failingPlugin) ContentMenus(context.Context, *cms.ContentRow) ([]cms.Menu, error) {
	return nil, errors.New("menu backend down")
}

func TestRegistry_ContentPluginIDs(t *testing.T) {
	registry := NewDefaultRegistry()

	tests := []struct {
		name     string
		channel  *cms.Channel
		expected []string
	}{
		{
			name:     "nil_channel",
			channel:  nil,
			expected: nil,
		},
		{
			name:     "no_plugins",
			channel:  &cms.Channel{ID: 1},
			expected: []string{},
		},
		{
			name: "model_then_related",
			channel: &cms.Channel{
				ID:                      2,
				ContentModelPluginID:    PreviewPluginID,
				ContentRelatedPluginIDs: []string{StatisticsPluginID},
			},
			expected: []string{PreviewPluginID, StatisticsPluginID},
		},
		{
			name: "unknown_and_duplicate_ids_dropped",
			channel: &cms.Channel{
				ID:                      3,
				ContentModelPluginID:    "missing",
				ContentRelatedPluginIDs: []string{StatisticsPluginID, StatisticsPluginID},
			},
			expected: []string{StatisticsPluginID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.ContentPluginIDs(tt.channel))
		})
	}
}

func TestRegistry_ContentColumns(t *testing.T) {
	registry := NewDefaultRegistry()

	columns := registry.ContentColumns([]string{StatisticsPluginID, PreviewPluginID, "missing"})

	require.Len(t, columns, 2)
	assert.Equal(t, "statistics:Hits", columns[0].AttributeName())
	assert.Equal(t, "preview:WordCount", columns[1].AttributeName())

	content := &cms.Content{Hits: 42, Body: "three short words"}
	assert.Equal(t, "42", columns[0].Calculate(content))
	assert.Equal(t, "3", columns[1].Calculate(content))
}

func TestRegistry_ContentMenus(t *testing.T) {
	registry := NewDefaultRegistry()
	row := &cms.ContentRow{ID: 7, SiteID: 1, ChannelID: 3}

	menus, err := registry.ContentMenus(context.Background(), []string{StatisticsPluginID, PreviewPluginID}, row)

	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Statistics", menus[0].Text)
	assert.Contains(t, menus[0].Href, "contentId=7")
	assert.Equal(t, "Preview", menus[1].Text)
	assert.Equal(t, "_blank", menus[1].Target)
}

func TestRegistry_ContentMenus_PluginError(t *testing.T) {
	registry := NewRegistry(failingPlugin{})

	menus, err := registry.ContentMenus(context.Background(), []string{"broken"}, &cms.ContentRow{ID: 1})

	assert.Nil(t, menus)
	assert.ErrorContains(t, err, "plugin broken")
}

func TestRegistry_ContentMenus_CanceledContext(t *testing.T) {
	registry := NewDefaultRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.ContentMenus(ctx, []string{PreviewPluginID}, &cms.ContentRow{ID: 1})

	assert.ErrorIs(t, err, context.Canceled)
}
