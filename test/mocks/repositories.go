package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"cmsadmin/domain/cms"
	"cmsadmin/domain/contracts"
)

// MockSiteRepository implements SiteRepository for testing
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) GetByID(ctx context.Context, siteID int64) (*cms.Site, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cms.Site), args.Error(1)
}

func (m *MockSiteRepository) ListAll(ctx context.Context) ([]*cms.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cms.Site), args.Error(1)
}

// MockChannelRepository implements ChannelRepository for testing
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) GetByID(ctx context.Context, channelID int64) (*cms.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cms.Channel), args.Error(1)
}

func (m *MockChannelRepository) AncestorIDs(ctx context.Context, channelID int64) ([]int64, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockChannelRepository) DescendantIDs(ctx context.Context, siteID, channelID int64) ([]int64, error) {
	args := m.Called(ctx, siteID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockContentRepository implements ContentRepository for testing
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetSummaries(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool) ([]cms.ContentSummary, error) {
	args := m.Called(ctx, site, channel, includeDescendants)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cms.ContentSummary), args.Error(1)
}

func (m *MockContentRepository) Search(ctx context.Context, site *cms.Site, channel *cms.Channel, includeDescendants bool, criteria cms.SearchCriteria) ([]cms.ContentSummary, error) {
	args := m.Called(ctx, site, channel, includeDescendants, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cms.ContentSummary), args.Error(1)
}

func (m *MockContentRepository) GetByID(ctx context.Context, site *cms.Site, channelID, contentID int64) (*cms.Content, error) {
	args := m.Called(ctx, site, channelID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cms.Content), args.Error(1)
}

// MockPermissionRepository implements PermissionRepository for testing
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) GetAdministrator(ctx context.Context, adminID int64) (*contracts.Administrator, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Administrator), args.Error(1)
}

func (m *MockPermissionRepository) SitePermissions(ctx context.Context, adminID, siteID int64) (cms.CapabilitySet, error) {
	args := m.Called(ctx, adminID, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cms.CapabilitySet), args.Error(1)
}

func (m *MockPermissionRepository) ChannelPermissions(ctx context.Context, adminID, siteID int64, channelIDs []int64) (cms.CapabilitySet, error) {
	args := m.Called(ctx, adminID, siteID, channelIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cms.CapabilitySet), args.Error(1)
}

// MockSessionRepository implements SessionRepository for testing
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*contracts.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Session), args.Error(1)
}

func (m *MockSessionRepository) Create(ctx context.Context, adminID int64, ttl time.Duration) (*contracts.Session, error) {
	args := m.Called(ctx, adminID, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Session), args.Error(1)
}

func (m *MockSessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
