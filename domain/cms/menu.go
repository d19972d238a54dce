package cms

// Menu is a context menu entry a plugin attaches to a content row.
type Menu struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Href      string `json:"href,omitempty"`
	Target    string `json:"target,omitempty"`
	IconClass string `json:"iconClass,omitempty"`
}
