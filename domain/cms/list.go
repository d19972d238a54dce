package cms

// Permissions is the caller's capability snapshot for one site and channel.
type Permissions struct {
	IsAdd         bool `json:"isAdd"`
	IsDelete      bool `json:"isDelete"`
	IsEdit        bool `json:"isEdit"`
	IsArrange     bool `json:"isArrange"`
	IsTranslate   bool `json:"isTranslate"`
	IsCheck       bool `json:"isCheck"`
	IsCreate      bool `json:"isCreate"`
	IsChannelEdit bool `json:"isChannelEdit"`
}
