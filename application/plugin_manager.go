package application

import (
	"context"

	"cmsadmin/domain/cms"
)

// PluginManager exposes what content plugins contribute to the admin list.
type PluginManager interface {
	// ContentPluginIDs returns the registered plugins enabled for the channel.
	ContentPluginIDs(channel *cms.Channel) []string

	// ContentColumns returns the columns the plugins compute.
	ContentColumns(pluginIDs []string) []cms.PluginColumn

	// ContentMenus returns the context menu entries the plugins offer for a row.
	ContentMenus(ctx context.Context, pluginIDs []string, row *cms.ContentRow) ([]cms.Menu, error)
}
