package cms

import "fmt"

// Review workflow levels stored on content records.
const (
	MaxCheckLevel     = 5
	CheckLevelDraft   = -99
	CheckLevelPending = 0
)

// CheckBox is a selectable option of the admin list's review state filter.
type CheckBox struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// CheckLevelLabel returns the display label of a stored review level.
// Positive levels are passed stages, negative levels are rejections at that stage.
func CheckLevelLabel(level int) string {
	switch {
	case level == CheckLevelDraft:
		return "Draft"
	case level == CheckLevelPending:
		return "Pending review"
	case level > 0 && level <= MaxCheckLevel:
		return fmt.Sprintf("Passed level %d", level)
	case level < 0 && level >= -MaxCheckLevel:
		return fmt.Sprintf("Rejected at level %d", -level)
	default:
		return fmt.Sprintf("Unknown (%d)", level)
	}
}

// CheckStateLabel returns the review state shown for a content record.
func CheckStateLabel(content *Content) string {
	if content.IsChecked {
		return "Published"
	}
	return CheckLevelLabel(content.CheckedLevel)
}

// CheckedLevels builds the ordered review state choices a user may filter by.
//
// Draft and pending are always offered. Intermediate pass levels are offered up to
// the stage the user can reach; a fully checked user reaches every stage. When
// includeFail is set the rejection levels the user can reach are appended.
func CheckedLevels(site *Site, isChecked bool, checkedLevel int, includeFail bool) []CheckBox {
	stages := site.ReviewStages()

	reach := checkedLevel
	if isChecked {
		reach = stages
	}
	if reach < 0 {
		reach = 0
	}
	if reach > stages {
		reach = stages
	}

	levels := []CheckBox{
		{Value: CheckLevelDraft, Label: CheckLevelLabel(CheckLevelDraft)},
		{Value: CheckLevelPending, Label: CheckLevelLabel(CheckLevelPending)},
	}

	for level := 1; level <= min(stages-1, reach); level++ {
		levels = append(levels, CheckBox{Value: level, Label: CheckLevelLabel(level)})
	}

	if includeFail {
		for level := 1; level <= reach; level++ {
			levels = append(levels, CheckBox{Value: -level, Label: CheckLevelLabel(-level)})
		}
	}

	return levels
}
