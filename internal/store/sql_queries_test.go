package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-keeper/models"
)

const listBlogsSelect = `SELECT b.blog_id, b.title, b.description, b.body, b.author_id, b.state, ` +
	`b.read_count, b.reading_time, array_to_string(b.tags, ','), b.created_at, b.updated_at, ` +
	`u.first_name, u.last_name, u.email ` +
	`FROM blogs b JOIN users u ON u.user_id = b.author_id`

func publishedFilter() models.BlogFilter {
	return models.BlogFilter{
		Page:      1,
		Limit:     20,
		SortBy:    models.SortByCreatedAt,
		SortOrder: models.SortOrderDesc,
		State:     models.StatePublished,
	}
}

func TestBuildListBlogsQuery_Defaults(t *testing.T) {
	query, args, err := buildListBlogsQuery(publishedFilter())
	require.NoError(t, err)

	assert.Equal(t, listBlogsSelect+` WHERE b.state = $1 ORDER BY b.created_at DESC LIMIT 20 OFFSET 0`, query)
	assert.Equal(t, []any{"published"}, args)
}

func TestBuildListBlogsQuery_SecondPageAscending(t *testing.T) {
	filter := publishedFilter()
	filter.Page = 2
	filter.Limit = 5
	filter.SortBy = models.SortByReadCount
	filter.SortOrder = models.SortOrderAsc

	query, args, err := buildListBlogsQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, listBlogsSelect+` WHERE b.state = $1 ORDER BY b.read_count ASC LIMIT 5 OFFSET 5`, query)
	assert.Equal(t, []any{"published"}, args)
}

func TestBuildListBlogsQuery_AuthorIDs(t *testing.T) {
	filter := publishedFilter()
	filter.AuthorIDs = []int64{7, 9}

	query, args, err := buildListBlogsQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, listBlogsSelect+` WHERE b.state = $1 AND b.author_id IN ($2,$3) ORDER BY b.created_at DESC LIMIT 20 OFFSET 0`, query)
	assert.Equal(t, []any{"published", int64(7), int64(9)}, args)
}

func TestBuildListBlogsQuery_Search(t *testing.T) {
	filter := publishedFilter()
	filter.Search = "golang"

	query, args, err := buildListBlogsQuery(filter)
	require.NoError(t, err)

	assert.Contains(t, query, `(b.title ILIKE $2 OR EXISTS (SELECT 1 FROM unnest(b.tags) AS tag WHERE tag ILIKE $3))`)
	assert.Equal(t, []any{"published", "%golang%", "%golang%"}, args)
}

func TestBuildListBlogsQuery_Tags(t *testing.T) {
	filter := publishedFilter()
	filter.Tags = []string{"go", "sql"}

	query, args, err := buildListBlogsQuery(filter)
	require.NoError(t, err)

	assert.Contains(t, query, `b.tags && $2`)
	require.Len(t, args, 2)
	assert.Equal(t, []string{"go", "sql"}, args[1])
}

func TestBuildListBlogsQuery_UnknownSortColumnFallsBack(t *testing.T) {
	filter := publishedFilter()
	filter.SortBy = "password_hash"

	query, _, err := buildListBlogsQuery(filter)
	require.NoError(t, err)

	assert.Contains(t, query, `ORDER BY b.created_at DESC`)
}

func TestBuildCountBlogsQuery(t *testing.T) {
	query, args, err := buildCountBlogsQuery(publishedFilter())
	require.NoError(t, err)

	assert.Equal(t, `SELECT COUNT(*) FROM blogs b WHERE b.state = $1`, query)
	assert.Equal(t, []any{"published"}, args)
}

func TestBuildCountBlogsQuery_NoFilter(t *testing.T) {
	query, args, err := buildCountBlogsQuery(models.BlogFilter{})
	require.NoError(t, err)

	assert.Equal(t, `SELECT COUNT(*) FROM blogs b`, query)
	assert.Empty(t, args)
}

func TestBuildUpdateBlogQuery(t *testing.T) {
	title := "A new title"
	state := models.StatePublished

	query, args, err := buildUpdateBlogQuery(models.BlogUpdate{
		BlogID: 3,
		Title:  &title,
		State:  &state,
	})
	require.NoError(t, err)

	assert.Equal(t, `UPDATE blogs SET updated_at = NOW(), title = $1, state = $2 WHERE blog_id = $3`, query)
	assert.Equal(t, []any{"A new title", "published", int64(3)}, args)
}

func TestBuildUpdateBlogQuery_BodyRefreshesReadingTime(t *testing.T) {
	body := "short body"
	readingTime := int64(1)

	query, args, err := buildUpdateBlogQuery(models.BlogUpdate{
		BlogID:      3,
		Body:        &body,
		ReadingTime: &readingTime,
	})
	require.NoError(t, err)

	assert.Equal(t, `UPDATE blogs SET updated_at = NOW(), body = $1, reading_time = $2 WHERE blog_id = $3`, query)
	assert.Equal(t, []any{"short body", int64(1), int64(3)}, args)
}

func TestBuildUpdateBlogQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateBlogQuery(models.BlogUpdate{BlogID: 3})
	require.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, splitTags(""))
	assert.Equal(t, []string{"go"}, splitTags("go"))
	assert.Equal(t, []string{"go", "sql"}, splitTags("go,sql"))
}
