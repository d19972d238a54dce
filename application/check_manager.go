package application

import (
	"context"

	"cmsadmin/domain/cms"
)

// CheckManager resolves the review workflow state available to a caller.
type CheckManager struct{}

// NewCheckManager creates a check manager.
func NewCheckManager() *CheckManager {
	return &CheckManager{}
}

// GetUserCheckLevel returns whether the caller can fully approve contents in the
// channel and, if not, the highest review stage they can pass.
func (m *CheckManager) GetUserCheckLevel(ctx context.Context, perms PermissionEvaluator, site *cms.Site, channelID int64) (bool, int, error) {
	if perms.IsSuperAdmin() {
		return true, site.CheckContentLevel, nil
	}

	if !site.IsCheckContentLevel {
		isChecked, err := perms.HasChannelPermissions(ctx, site.ID, channelID, cms.ChannelPermissionContentCheckLevel1)
		return isChecked, 0, err
	}

	for level := cms.MaxCheckLevel; level >= 1; level-- {
		held, err := perms.HasChannelPermissions(ctx, site.ID, channelID, cms.CheckLevelCapability(level))
		if err != nil {
			return false, 0, err
		}
		if !held {
			continue
		}
		if level == cms.MaxCheckLevel || site.CheckContentLevel <= level {
			return true, 0, nil
		}
		return false, level, nil
	}

	return false, 0, nil
}

// CheckedLevels returns the ordered review state choices for the caller's reach.
func (m *CheckManager) CheckedLevels(site *cms.Site, isChecked bool, checkedLevel int, includeFail bool) []cms.CheckBox {
	return cms.CheckedLevels(site, isChecked, checkedLevel, includeFail)
}
