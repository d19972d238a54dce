package helpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
	"cmsadmin/test/mocks"
)

// MockRepositories holds all repository mocks for easy injection
type MockRepositories struct {
	Site       *mocks.MockSiteRepository
	Channel    *mocks.MockChannelRepository
	Content    *mocks.MockContentRepository
	Permission *mocks.MockPermissionRepository
	Session    *mocks.MockSessionRepository
	Plugins    *mocks.MockPluginManager
}

// NewMockRepositories creates a new set of repository mocks
func NewMockRepositories() *MockRepositories {
	return &MockRepositories{
		Site:       &mocks.MockSiteRepository{},
		Channel:    &mocks.MockChannelRepository{},
		Content:    &mocks.MockContentRepository{},
		Permission: &mocks.MockPermissionRepository{},
		Session:    &mocks.MockSessionRepository{},
		Plugins:    &mocks.MockPluginManager{},
	}
}

// ExpectSite sets up expectations for a successful site retrieval
func (m *MockRepositories) ExpectSite(site *cms.Site) {
	m.Site.On("GetByID", mock.Anything, site.ID).Return(site, nil)
}

// ExpectMissingSite sets up expectations for a site that does not exist
func (m *MockRepositories) ExpectMissingSite(siteID int64) {
	m.Site.On("GetByID", mock.Anything, siteID).Return(nil, contracts.ErrNotFound)
}

// ExpectChannel sets up expectations for a successful channel retrieval
func (m *MockRepositories) ExpectChannel(channel *cms.Channel) {
	m.Channel.On("GetByID", mock.Anything, channel.ID).Return(channel, nil)
}

// ExpectMissingChannel sets up expectations for a channel that does not exist
func (m *MockRepositories) ExpectMissingChannel(channelID int64) {
	m.Channel.On("GetByID", mock.Anything, channelID).Return(nil, contracts.ErrNotFound)
}

// ExpectNoPlugins sets up plugin expectations for a channel without plugins
func (m *MockRepositories) ExpectNoPlugins() {
	m.Plugins.On("ContentPluginIDs", mock.Anything).Return([]string{})
	m.Plugins.On("ContentColumns", mock.Anything).Return([]cms.PluginColumn(nil))
}

// ExpectSummaries sets up expectations for the unfiltered summary path
func (m *MockRepositories) ExpectSummaries(summaries []cms.ContentSummary) {
	m.Content.On("GetSummaries", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(summaries, nil)
}

// ExpectContents sets up hydration expectations for each content
func (m *MockRepositories) ExpectContents(contents ...*cms.Content) {
	for _, c := range contents {
		m.Content.On("GetByID", mock.Anything, mock.Anything, c.ChannelID, c.ID).Return(c, nil)
	}
}

// AssertAllExpectations verifies all mock expectations were met
func (m *MockRepositories) AssertAllExpectations(t mock.TestingT) {
	m.Site.AssertExpectations(t)
	m.Channel.AssertExpectations(t)
	m.Content.AssertExpectations(t)
	m.Permission.AssertExpectations(t)
	m.Session.AssertExpectations(t)
	m.Plugins.AssertExpectations(t)
}

// FakePermissions is a PermissionEvaluator backed by fixed capability sets.
type FakePermissions struct {
	Super   bool
	Site    cms.CapabilitySet
	Channel cms.CapabilitySet
	Err     error

	calls atomic.Int64
}

// NewFakePermissions creates an evaluator granting the given site and channel capabilities.
func NewFakePermissions(site []cms.Capability, channel []cms.Capability) *FakePermissions {
	return &FakePermissions{
		Site:    cms.NewCapabilitySet(site...),
		Channel: cms.NewCapabilitySet(channel...),
	}
}

func (f *FakePermissions) IsSuperAdmin() bool { return f.Super }

func (f *FakePermissions) HasSitePermissions(_ context.Context, _ int64, caps ...cms.Capability) (bool, error) {
	f.calls.Add(1)
	if f.Err != nil {
		return false, f.Err
	}
	return f.Super || f.Site.Intersects(caps...), nil
}

func (f *FakePermissions) HasChannelPermissions(_ context.Context, _, _ int64, caps ...cms.Capability) (bool, error) {
	f.calls.Add(1)
	if f.Err != nil {
		return false, f.Err
	}
	return f.Super || f.Channel.Intersects(caps...), nil
}

// Calls returns how many capability checks were made.
func (f *FakePermissions) Calls() int64 {
	return f.calls.Load()
}

// TestData provides simple builders for test data
type TestData struct{}

// NewTestData creates a test data builder
func NewTestData() *TestData {
	return &TestData{}
}

// SimpleSite creates a single stage review site with the given page size
func (td *TestData) SimpleSite(id int64, pageSize int) *cms.Site {
	return &cms.Site{
		ID:       id,
		Name:     fmt.Sprintf("Site %d", id),
		Dir:      fmt.Sprintf("site%d", id),
		PageSize: pageSize,
	}
}

// ReviewSite creates a site with multi stage review
func (td *TestData) ReviewSite(id int64, pageSize, stages int) *cms.Site {
	site := td.SimpleSite(id, pageSize)
	site.IsCheckContentLevel = true
	site.CheckContentLevel = stages
	return site
}

// SimpleChannel creates a channel without plugins
func (td *TestData) SimpleChannel(id, siteID int64) *cms.Channel {
	return &cms.Channel{
		ID:       id,
		SiteID:   siteID,
		ParentID: 1,
		Name:     fmt.Sprintf("Channel %d", id),
	}
}

// Summaries creates count summaries in the channel with IDs starting at firstID
func (td *TestData) Summaries(channelID int64, firstID int64, count int) []cms.ContentSummary {
	summaries := make([]cms.ContentSummary, 0, count)
	for i := 0; i < count; i++ {
		summaries = append(summaries, cms.ContentSummary{ID: firstID + int64(i), ChannelID: channelID})
	}
	return summaries
}

// SimpleContent creates a content record matching a summary
func (td *TestData) SimpleContent(siteID int64, summary cms.ContentSummary) *cms.Content {
	added := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return &cms.Content{
		ID:          summary.ID,
		SiteID:      siteID,
		ChannelID:   summary.ChannelID,
		Title:       fmt.Sprintf("Content %d", summary.ID),
		AddUserName: "admin",
		AddDate:     &added,
	}
}

// Helper for common test context
func TestContext() context.Context {
	return context.Background()
}

// Helper for time-based tests
func TestTime(daysAgo int) *time.Time {
	t := time.Now().AddDate(0, 0, -daysAgo)
	return &t
}
