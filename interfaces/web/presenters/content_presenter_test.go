package presenters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsadmin/application"
	"cmsadmin/domain/cms"
)

func TestContentPresenter_ToContentListView_Success(t *testing.T) {
	// Arrange
	presenter := NewContentPresenter()
	result := &application.ListResult{
		PageContents: []*cms.ContentRow{
			{
				ID: 11, SiteID: 1, ChannelID: 2, Sequence: 21, Title: "Hello",
				Values:      map[string]string{cms.AttributeTitle: "Hello"},
				PluginMenus: []cms.Menu{{ID: "preview", Text: "Preview"}},
			},
			{ID: 12, SiteID: 1, ChannelID: 2, Sequence: 22, Title: "World"},
		},
		Total:         25,
		PageSize:      20,
		Columns:       []cms.ContentColumn{{AttributeName: cms.AttributeSequence, IsList: true}},
		IsAllContents: true,
		CheckedLevels: []cms.CheckBox{{Value: cms.CheckLevelDraft, Label: "Draft"}},
		Permissions:   cms.Permissions{IsAdd: true, IsCreate: true},
	}

	// Act
	view := presenter.ToContentListView(result)

	// Assert
	require.NotNil(t, view)
	assert.Equal(t, 25, view.Total)
	assert.Equal(t, 20, view.PageSize)
	assert.True(t, view.IsAllContents)
	require.Len(t, view.PageContents, 2)
	assert.Equal(t, 21, view.PageContents[0].Sequence)
	assert.Equal(t, "Preview", view.PageContents[0].PluginMenus[0].Text)
	assert.NotNil(t, view.PageContents[1].PluginMenus) // empty array, not null
	assert.NotNil(t, view.PageContents[1].Values)
	assert.Equal(t, []CheckBoxView{{Label: "Draft", Value: cms.CheckLevelDraft}}, view.CheckedLevels)
	assert.True(t, view.Permissions.IsCreate)
}

func TestContentPresenter_ToContentListView_EmptyResult(t *testing.T) {
	presenter := NewContentPresenter()

	view := presenter.ToContentListView(&application.ListResult{PageSize: 30})

	require.NotNil(t, view)
	body, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, []any{}, decoded["pageContents"])
	assert.Equal(t, []any{}, decoded["columns"])
	assert.Equal(t, []any{}, decoded["checkedLevels"])
	assert.Equal(t, float64(0), decoded["total"])

	permissions, ok := decoded["permissions"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"isAdd", "isDelete", "isEdit", "isArrange", "isTranslate", "isCheck", "isCreate", "isChannelEdit"} {
		assert.Contains(t, permissions, key)
	}
}

func TestContentPresenter_ToContentListView_Nil(t *testing.T) {
	assert.Nil(t, NewContentPresenter().ToContentListView(nil))
}
