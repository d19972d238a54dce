package cms

// Site is the configuration aggregate a channel tree and its contents belong to.
type Site struct {
	ID       int64
	Name     string
	Dir      string
	PageSize int // Records per admin list page

	// Multi-stage review settings. When IsCheckContentLevel is false the site
	// uses a single review stage regardless of CheckContentLevel.
	IsCheckContentLevel bool
	CheckContentLevel   int
}

// ReviewStages returns the number of review stages a content record passes through.
func (s *Site) ReviewStages() int {
	if !s.IsCheckContentLevel || s.CheckContentLevel < 1 {
		return 1
	}
	if s.CheckContentLevel > MaxCheckLevel {
		return MaxCheckLevel
	}
	return s.CheckContentLevel
}
