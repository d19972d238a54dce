package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmsadmin/domain/cms"
)

// MockPluginManager implements the application's PluginManager for testing
type MockPluginManager struct {
	mock.Mock
}

func (m *MockPluginManager) ContentPluginIDs(channel *cms.Channel) []string {
	args := m.Called(channel)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockPluginManager) ContentColumns(pluginIDs []string) []cms.PluginColumn {
	args := m.Called(pluginIDs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]cms.PluginColumn)
}

func (m *MockPluginManager) ContentMenus(ctx context.Context, pluginIDs []string, row *cms.ContentRow) ([]cms.Menu, error) {
	args := m.Called(ctx, pluginIDs, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cms.Menu), args.Error(1)
}

// MockPermissionEvaluator implements the application's PermissionEvaluator for testing.
// Capability checks are recorded per capability so tests can grant them one at a time.
type MockPermissionEvaluator struct {
	mock.Mock
}

func (m *MockPermissionEvaluator) IsSuperAdmin() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockPermissionEvaluator) HasSitePermissions(ctx context.Context, siteID int64, caps ...cms.Capability) (bool, error) {
	args := m.Called(ctx, siteID, caps)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionEvaluator) HasChannelPermissions(ctx context.Context, siteID, channelID int64, caps ...cms.Capability) (bool, error) {
	args := m.Called(ctx, siteID, channelID, caps)
	return args.Bool(0), args.Error(1)
}
