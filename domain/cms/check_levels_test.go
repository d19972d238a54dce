package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func values(boxes []CheckBox) []int {
	out := make([]int, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.Value)
	}
	return out
}

func TestCheckedLevels(t *testing.T) {
	review := func(stages int) *Site {
		return &Site{IsCheckContentLevel: true, CheckContentLevel: stages}
	}

	tests := []struct {
		name        string
		site        *Site
		isChecked   bool
		level       int
		includeFail bool
		expected    []int
	}{
		{
			name:     "single_stage_unchecked",
			site:     &Site{},
			expected: []int{CheckLevelDraft, CheckLevelPending},
		},
		{
			name:        "single_stage_checked_with_fail",
			site:        &Site{},
			isChecked:   true,
			includeFail: true,
			expected:    []int{CheckLevelDraft, CheckLevelPending, -1},
		},
		{
			name:        "three_stages_fully_checked",
			site:        review(3),
			isChecked:   true,
			includeFail: true,
			expected:    []int{CheckLevelDraft, CheckLevelPending, 1, 2, -1, -2, -3},
		},
		{
			name:      "three_stages_fully_checked_without_fail",
			site:      review(3),
			isChecked: true,
			expected:  []int{CheckLevelDraft, CheckLevelPending, 1, 2},
		},
		{
			name:        "partial_reach",
			site:        review(4),
			level:       2,
			includeFail: true,
			expected:    []int{CheckLevelDraft, CheckLevelPending, 1, 2, -1, -2},
		},
		{
			name:        "level_clamped_to_stages",
			site:        review(2),
			level:       9,
			includeFail: true,
			expected:    []int{CheckLevelDraft, CheckLevelPending, 1, -1, -2},
		},
		{
			name:        "stages_capped_at_max",
			site:        review(8),
			isChecked:   true,
			includeFail: false,
			expected:    []int{CheckLevelDraft, CheckLevelPending, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, values(CheckedLevels(tt.site, tt.isChecked, tt.level, tt.includeFail)))
		})
	}
}

func TestCheckLevelLabel(t *testing.T) {
	assert.Equal(t, "Draft", CheckLevelLabel(CheckLevelDraft))
	assert.Equal(t, "Pending review", CheckLevelLabel(CheckLevelPending))
	assert.Equal(t, "Passed level 2", CheckLevelLabel(2))
	assert.Equal(t, "Rejected at level 3", CheckLevelLabel(-3))
	assert.Equal(t, "Unknown (42)", CheckLevelLabel(42))
}

func TestCheckStateLabel(t *testing.T) {
	assert.Equal(t, "Published", CheckStateLabel(&Content{IsChecked: true, CheckedLevel: -2}))
	assert.Equal(t, "Passed level 1", CheckStateLabel(&Content{CheckedLevel: 1}))
}
