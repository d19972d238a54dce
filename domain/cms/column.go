package cms

// Built-in content attribute names.
const (
	AttributeSequence         = "Sequence"
	AttributeID               = "Id"
	AttributeTitle            = "Title"
	AttributeSubTitle         = "SubTitle"
	AttributeAuthor           = "Author"
	AttributeSource           = "Source"
	AttributeSummary          = "Summary"
	AttributeBody             = "Body"
	AttributeAddDate          = "AddDate"
	AttributeLastEditDate     = "LastEditDate"
	AttributeAddUserName      = "AddUserName"
	AttributeLastEditUserName = "LastEditUserName"
	AttributeGroupNames       = "GroupNames"
	AttributeTagNames         = "TagNames"
	AttributeHits             = "Hits"
	AttributeCheckState       = "CheckState"
)

// ContentColumn is a display column of the admin content list.
type ContentColumn struct {
	AttributeName string `json:"attributeName"`
	DisplayName   string `json:"displayName"`
	InputType     string `json:"inputType"`
	IsList        bool   `json:"isList"`
	IsSearchable  bool   `json:"isSearchable"`
	IsCalculate   bool   `json:"isCalculate"`
}

// PluginColumn is a column computed by a plugin for each row.
type PluginColumn struct {
	PluginID    string
	Name        string
	DisplayName string
	Calculate   func(content *Content) string
}

// AttributeName returns the key the column's values are stored under in a row.
func (c PluginColumn) AttributeName() string {
	return c.PluginID + ":" + c.Name
}
