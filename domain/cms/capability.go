package cms

// Capability is a named authorization gate scoped to a site or a channel.
type Capability string

// Site scoped capabilities.
const (
	SitePermissionContents       Capability = "cms_contents"
	SitePermissionCreateContents Capability = "cms_createContents"
	SitePermissionChannels       Capability = "cms_channels"
)

// Channel scoped capabilities.
const (
	ChannelPermissionContentView        Capability = "cms_contentView"
	ChannelPermissionContentAdd         Capability = "cms_contentAdd"
	ChannelPermissionContentEdit        Capability = "cms_contentEdit"
	ChannelPermissionContentDelete      Capability = "cms_contentDelete"
	ChannelPermissionContentTranslate   Capability = "cms_contentTranslate"
	ChannelPermissionContentArrange     Capability = "cms_contentArrange"
	ChannelPermissionContentCheckLevel1 Capability = "cms_contentCheckLevel1"
	ChannelPermissionContentCheckLevel2 Capability = "cms_contentCheckLevel2"
	ChannelPermissionContentCheckLevel3 Capability = "cms_contentCheckLevel3"
	ChannelPermissionContentCheckLevel4 Capability = "cms_contentCheckLevel4"
	ChannelPermissionContentCheckLevel5 Capability = "cms_contentCheckLevel5"
	ChannelPermissionCreatePage         Capability = "cms_createPage"
	ChannelPermissionChannelEdit        Capability = "cms_channelEdit"
)

// ContentListCapabilities are the channel capabilities that grant access to the
// content list. Holding any one of them is enough.
var ContentListCapabilities = []Capability{
	ChannelPermissionContentView,
	ChannelPermissionContentAdd,
	ChannelPermissionContentEdit,
	ChannelPermissionContentDelete,
	ChannelPermissionContentTranslate,
	ChannelPermissionContentArrange,
	ChannelPermissionContentCheckLevel1,
	ChannelPermissionContentCheckLevel2,
	ChannelPermissionContentCheckLevel3,
	ChannelPermissionContentCheckLevel4,
	ChannelPermissionContentCheckLevel5,
}

// CheckLevelCapability returns the review capability for a 1-based stage.
func CheckLevelCapability(level int) Capability {
	switch level {
	case 1:
		return ChannelPermissionContentCheckLevel1
	case 2:
		return ChannelPermissionContentCheckLevel2
	case 3:
		return ChannelPermissionContentCheckLevel3
	case 4:
		return ChannelPermissionContentCheckLevel4
	case 5:
		return ChannelPermissionContentCheckLevel5
	default:
		return ""
	}
}

// CapabilitySet is a set of granted capabilities.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	set.Add(caps...)
	return set
}

// Add inserts capabilities into the set.
func (s CapabilitySet) Add(caps ...Capability) {
	for _, c := range caps {
		s[c] = struct{}{}
	}
}

// Has reports whether the capability is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Intersects reports whether any of the required capabilities is in the set.
// An empty requirement never matches.
func (s CapabilitySet) Intersects(required ...Capability) bool {
	for _, c := range required {
		if s.Has(c) {
			return true
		}
	}
	return false
}
