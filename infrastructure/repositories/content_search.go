package repositories

import (
	"strings"

	"cmsadmin/domain/cms"
)

// searchColumns maps the admin search types to the columns they match against.
var searchColumns = map[string]string{
	strings.ToLower(cms.AttributeTitle):            "c.title",
	strings.ToLower(cms.AttributeSubTitle):         "c.sub_title",
	strings.ToLower(cms.AttributeAuthor):           "c.author",
	strings.ToLower(cms.AttributeSource):           "c.source",
	strings.ToLower(cms.AttributeSummary):          "c.summary",
	strings.ToLower(cms.AttributeBody):             "c.body",
	strings.ToLower(cms.AttributeAddUserName):      "c.add_user_name",
	strings.ToLower(cms.AttributeLastEditUserName): "c.last_edit_user_name",
	strings.ToLower(cms.AttributeID):               "CAST(c.content_id AS TEXT)",
}

// searchColumn returns the column for a search type. Unknown types search the title.
func searchColumn(searchType string) string {
	if column, ok := searchColumns[strings.ToLower(strings.TrimSpace(searchType))]; ok {
		return column
	}
	return searchColumns[strings.ToLower(cms.AttributeTitle)]
}

// escapeLike escapes LIKE wildcards so user text matches literally.
func escapeLike(text string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
}

// placeholders returns n comma separated bind markers.
func placeholders(n int) string {
	if n <= 0 {
		return "NULL"
	}
	return strings.Repeat(",?", n)[1:]
}

// buildSearchQuery composes the content search over the given channels.
// The text match applies whenever type and text are both set; the remaining
// filters apply only to advanced searches.
func buildSearchQuery(siteID int64, channelIDs []int64, criteria cms.SearchCriteria) (string, []any) {
	var (
		where []string
		args  []any
	)

	where = append(where, "c.site_id = ?")
	args = append(args, siteID)

	where = append(where, "c.channel_id IN ("+placeholders(len(channelIDs))+")")
	for _, id := range channelIDs {
		args = append(args, id)
	}

	if criteria.HasTextQuery() {
		where = append(where, searchColumn(criteria.SearchType)+` LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(criteria.SearchText)+"%")
	}

	if criteria.IsAdvanced {
		if len(criteria.CheckedLevels) > 0 {
			where = append(where, "c.is_checked = 0 AND c.checked_level IN ("+placeholders(len(criteria.CheckedLevels))+")")
			for _, level := range criteria.CheckedLevels {
				args = append(args, level)
			}
		}
		if criteria.IsTop {
			where = append(where, "c.is_top = 1")
		}
		if criteria.IsRecommend {
			where = append(where, "c.is_recommend = 1")
		}
		if criteria.IsHot {
			where = append(where, "c.is_hot = 1")
		}
		if criteria.IsColor {
			where = append(where, "c.is_color = 1")
		}
		if len(criteria.GroupNames) > 0 {
			where = append(where, "EXISTS (SELECT 1 FROM content_groups g WHERE g.content_id = c.content_id AND g.group_name IN ("+placeholders(len(criteria.GroupNames))+"))")
			for _, name := range criteria.GroupNames {
				args = append(args, name)
			}
		}
		if len(criteria.TagNames) > 0 {
			where = append(where, "EXISTS (SELECT 1 FROM content_tags t WHERE t.content_id = c.content_id AND t.tag_name IN ("+placeholders(len(criteria.TagNames))+"))")
			for _, name := range criteria.TagNames {
				args = append(args, name)
			}
		}
	}

	query := "SELECT c.content_id, c.channel_id FROM contents c WHERE " +
		strings.Join(where, " AND ") +
		" ORDER BY c.is_top DESC, c.taxis DESC, c.content_id DESC"

	return query, args
}
