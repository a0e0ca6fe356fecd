package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-keeper/models"
)

var allowedSortColumns = map[string]struct{}{
	models.SortByCreatedAt:   {},
	models.SortByReadCount:   {},
	models.SortByReadingTime: {},
}

// ParseListQuery builds a blog listing filter from URL query parameters,
// applying the documented defaults and bounds. Unknown parameters are
// ignored; invalid values for known parameters produce error messages.
func ParseListQuery(query url.Values) (models.BlogFilter, []string) {
	filter := models.BlogFilter{
		Page:      models.DefaultPage,
		Limit:     models.DefaultLimit,
		SortBy:    models.SortByCreatedAt,
		SortOrder: models.SortOrderDesc,
	}
	var errs []string

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || page < 1 {
			errs = append(errs, "Page must be an integer greater than or equal to 1")
		} else {
			filter.Page = page
		}
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit < 1 || limit > models.MaxLimit {
			errs = append(errs, fmt.Sprintf("Limit must be an integer between 1 and %d", models.MaxLimit))
		} else {
			filter.Limit = limit
		}
	}

	if raw := query.Get("sortBy"); raw != "" {
		if _, ok := allowedSortColumns[raw]; !ok {
			errs = append(errs, "SortBy must be one of created_at, read_count, reading_time")
		} else {
			filter.SortBy = raw
		}
	}

	if raw := query.Get("sortOrder"); raw != "" {
		switch strings.ToLower(raw) {
		case models.SortOrderAsc, models.SortOrderDesc:
			filter.SortOrder = strings.ToLower(raw)
		default:
			errs = append(errs, "SortOrder must be either asc or desc")
		}
	}

	if raw := query.Get("search"); raw != "" {
		if utf8.RuneCountInString(raw) > models.MaxSearchLength {
			errs = append(errs, fmt.Sprintf("Search cannot exceed %d characters", models.MaxSearchLength))
		} else {
			filter.Search = strings.TrimSpace(raw)
		}
	}

	if raw := query.Get("author"); raw != "" {
		filter.AuthorName = strings.TrimSpace(raw)
	}

	if raw := query.Get("tags"); raw != "" {
		filter.Tags = models.NormalizeTags(strings.Split(raw, ","))
	}

	if raw := query.Get("state"); raw != "" {
		state := models.BlogState(strings.ToLower(raw))
		if !state.IsValid() {
			errs = append(errs, "State must be either draft or published")
		} else {
			filter.State = state
		}
	}

	return filter, errs
}
