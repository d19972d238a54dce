package plugins

import (
	"context"
	"fmt"
	"sync"

	"cmsadmin/domain/cms"
	"cmsadmin/logging"
)

// Plugin contributes list columns and row menus to channels that enable it.
type Plugin interface {
	ID() string
	ContentColumns() []cms.PluginColumn
	ContentMenus(ctx context.Context, row *cms.ContentRow) ([]cms.Menu, error)
}

// Registry holds the installed content plugins by id.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	logger  *logging.Logger
}

// NewRegistry creates a registry with the given plugins installed.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{
		plugins: make(map[string]Plugin, len(plugins)),
		logger:  logging.Default().WithComponent("plugins"),
	}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// NewDefaultRegistry creates a registry with the built-in plugins installed.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewStatisticsPlugin(), NewPreviewPlugin())
}

// Register installs a plugin, replacing any plugin with the same id.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[p.ID()]; exists {
		r.logger.Warn("Replacing registered plugin", "plugin_id", p.ID())
	}
	r.plugins[p.ID()] = p
}

// Get returns the plugin registered under id.
func (r *Registry) Get(id string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[id]
	return p, ok
}

// ContentPluginIDs returns the channel's content model plugin followed by its related
// plugins, keeping only installed ones. Duplicates are dropped.
func (r *Registry) ContentPluginIDs(channel *cms.Channel) []string {
	if channel == nil {
		return nil
	}

	candidates := make([]string, 0, len(channel.ContentRelatedPluginIDs)+1)
	if channel.ContentModelPluginID != "" {
		candidates = append(candidates, channel.ContentModelPluginID)
	}
	candidates = append(candidates, channel.ContentRelatedPluginIDs...)

	ids := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := r.Get(id); !ok {
			r.logger.Debug("Channel references unknown plugin", "plugin_id", id, "channel_id", channel.ID)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ContentColumns returns the columns of the given plugins in plugin order.
func (r *Registry) ContentColumns(pluginIDs []string) []cms.PluginColumn {
	var columns []cms.PluginColumn
	for _, id := range pluginIDs {
		p, ok := r.Get(id)
		if !ok {
			continue
		}
		for _, c := range p.ContentColumns() {
			c.PluginID = id
			columns = append(columns, c)
		}
	}
	return columns
}

// ContentMenus collects the row menus of the given plugins in plugin order.
func (r *Registry) ContentMenus(ctx context.Context, pluginIDs []string, row *cms.ContentRow) ([]cms.Menu, error) {
	var menus []cms.Menu
	for _, id := range pluginIDs {
		p, ok := r.Get(id)
		if !ok {
			continue
		}
		m, err := p.ContentMenus(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", id, err)
		}
		menus = append(menus, m...)
	}
	return menus, nil
}
