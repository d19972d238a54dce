package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

func TestSqlcSiteRepository(t *testing.T) {
	database, seed := newSeededDatabase(t)
	sites := NewSqlcSiteRepository(database, 30)

	site, err := sites.GetByID(t.Context(), seed.SiteID)
	require.NoError(t, err)
	assert.Equal(t, "Demo Site", site.Name)
	assert.Equal(t, 20, site.PageSize)
	assert.True(t, site.IsCheckContentLevel)
	assert.Equal(t, 3, site.CheckContentLevel)

	_, err = sites.GetByID(t.Context(), 4242)
	assert.ErrorIs(t, err, contracts.ErrNotFound)
}

func TestSqlcSiteRepository_DefaultPageSize(t *testing.T) {
	database := newTestDatabase(t)
	siteID, err := database.WriteQueries().InsertSite(t.Context(), db.InsertSiteParams{SiteName: "Bare", SiteDir: "bare"})
	require.NoError(t, err)

	site, err := NewSqlcSiteRepository(database, 30).GetByID(t.Context(), siteID)

	require.NoError(t, err)
	assert.Equal(t, 30, site.PageSize)

	all, err := NewSqlcSiteRepository(database, 30).ListAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSqlcChannelRepository(t *testing.T) {
	database, seed := newSeededDatabase(t)
	channels := NewSqlcChannelRepository(database)

	news, err := channels.GetByID(t.Context(), seed.NewsChannelID)
	require.NoError(t, err)
	assert.Equal(t, "News", news.Name)
	assert.Equal(t, seed.RootChannelID, news.ParentID)
	assert.Equal(t, "statistics", news.ContentModelPluginID)
	assert.Equal(t, []string{"preview"}, news.ContentRelatedPluginIDs)
	assert.Equal(t, []string{cms.AttributeTitle, cms.AttributeAddDate, cms.AttributeHits}, news.ListColumns)

	root, err := channels.GetByID(t.Context(), seed.RootChannelID)
	require.NoError(t, err)
	assert.True(t, root.IsRoot())
	assert.True(t, root.IsAllContents)

	ancestors, err := channels.AncestorIDs(t.Context(), seed.EventChannelID)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.NewsChannelID, seed.RootChannelID}, ancestors)

	descendants, err := channels.DescendantIDs(t.Context(), seed.SiteID, seed.RootChannelID)
	require.NoError(t, err)
	require.NotEmpty(t, descendants)
	assert.Equal(t, seed.RootChannelID, descendants[0])
	assert.ElementsMatch(t, []int64{seed.RootChannelID, seed.NewsChannelID, seed.EventChannelID}, descendants)

	_, err = channels.GetByID(t.Context(), 4242)
	assert.ErrorIs(t, err, contracts.ErrNotFound)
}

func TestSqlcPermissionRepository(t *testing.T) {
	database, seed := newSeededDatabase(t)
	permissions := NewSqlcPermissionRepository(database)

	admin, err := permissions.GetAdministrator(t.Context(), seed.SuperAdminID)
	require.NoError(t, err)
	assert.True(t, admin.IsSuperAdmin)
	assert.Equal(t, "admin", admin.UserName)

	editor, err := permissions.GetAdministrator(t.Context(), seed.EditorID)
	require.NoError(t, err)
	assert.False(t, editor.IsSuperAdmin)

	site, err := permissions.SitePermissions(t.Context(), seed.EditorID, seed.SiteID)
	require.NoError(t, err)
	assert.True(t, site.Has(cms.SitePermissionContents))
	assert.False(t, site.Has(cms.SitePermissionCreateContents))

	// Grants live on the root channel only
	direct, err := permissions.ChannelPermissions(t.Context(), seed.EditorID, seed.SiteID, []int64{seed.NewsChannelID})
	require.NoError(t, err)
	assert.Empty(t, direct)

	inherited, err := permissions.ChannelPermissions(t.Context(), seed.EditorID, seed.SiteID, []int64{seed.NewsChannelID, seed.RootChannelID})
	require.NoError(t, err)
	assert.True(t, inherited.Has(cms.ChannelPermissionContentView))
	assert.True(t, inherited.Has(cms.ChannelPermissionContentAdd))
	assert.False(t, inherited.Has(cms.ChannelPermissionContentDelete))

	_, err = permissions.GetAdministrator(t.Context(), 4242)
	assert.ErrorIs(t, err, contracts.ErrNotFound)
}

func TestSqlcSessionRepository(t *testing.T) {
	database, seed := newSeededDatabase(t)
	repo := NewSqlcSessionRepository(database).(*SqlcSessionRepository)
	issuedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return issuedAt }

	session, err := repo.Create(t.Context(), seed.EditorID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, seed.EditorID, session.AdminID)

	loaded, err := repo.GetByToken(t.Context(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.AdminID, loaded.AdminID)
	assert.True(t, loaded.ExpiresAt.Equal(issuedAt.Add(time.Hour)))
	assert.False(t, loaded.IsExpired(issuedAt.Add(30*time.Minute)))
	assert.True(t, loaded.IsExpired(issuedAt.Add(time.Hour)))

	// Not yet expired
	removed, err := repo.PurgeExpired(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	repo.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	removed, err = repo.PurgeExpired(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.GetByToken(t.Context(), session.Token)
	assert.ErrorIs(t, err, contracts.ErrNotFound)
}
