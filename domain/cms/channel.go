package cms

// Channel is a node in a site's content category tree.
type Channel struct {
	ID       int64
	SiteID   int64
	ParentID int64 // 0 for the site root channel
	Name     string

	// IsAllContents lists contents of every descendant channel alongside the channel's own.
	IsAllContents bool

	ContentModelPluginID    string
	ContentRelatedPluginIDs []string

	// ListColumns holds the attribute names shown by default in the admin list.
	ListColumns []string
}

// IsRoot returns true for the site's top level channel.
func (c *Channel) IsRoot() bool {
	return c.ParentID == 0
}
