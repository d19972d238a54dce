package cms

// SearchCriteria holds the filters of the admin content search.
type SearchCriteria struct {
	SearchType string
	SearchText string
	IsAdvanced bool

	// Applied only when IsAdvanced is set.
	CheckedLevels []int
	IsTop         bool
	IsRecommend   bool
	IsHot         bool
	IsColor       bool
	GroupNames    []string
	TagNames      []string
}

// HasTextQuery reports whether both the search attribute and text are present.
func (c SearchCriteria) HasTextQuery() bool {
	return c.SearchType != "" && c.SearchText != ""
}

// IsSearch reports whether the criteria select the filtered search path
// instead of the plain channel listing.
func (c SearchCriteria) IsSearch() bool {
	return c.HasTextQuery() || c.IsAdvanced
}
