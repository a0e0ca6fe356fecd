package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-keeper/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, first_name, last_name, email, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
    WHERE user_id = $4
    RETURNING user_id, first_name, last_name, email, password_hash, created_at, updated_at;`

	findUserIDsByName = `SELECT user_id
    FROM users
    WHERE first_name ILIKE $1 OR last_name ILIKE $1;`

	createBlog = `INSERT INTO blogs (title, description, body, author_id, state, reading_time, tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING blog_id, created_at, updated_at;`

	findBlogByID = `SELECT b.blog_id, b.title, b.description, b.body, b.author_id, b.state,
        b.read_count, b.reading_time, array_to_string(b.tags, ','), b.created_at, b.updated_at,
        u.first_name, u.last_name, u.email
    FROM blogs b
    JOIN users u ON u.user_id = b.author_id
    WHERE b.blog_id = $1;`

	// fetchPublishedBlog bumps the read counter and returns the updated row
	// in a single statement, so two concurrent fetches each count exactly
	// once and a draft or missing post is never modified.
	fetchPublishedBlog = `WITH bumped AS (
        UPDATE blogs
        SET read_count = read_count + 1
        WHERE blog_id = $1 AND state = 'published'
        RETURNING *
    )
    SELECT b.blog_id, b.title, b.description, b.body, b.author_id, b.state,
        b.read_count, b.reading_time, array_to_string(b.tags, ','), b.created_at, b.updated_at,
        u.first_name, u.last_name, u.email
    FROM bumped b
    JOIN users u ON u.user_id = b.author_id;`

	deleteBlog = `DELETE FROM blogs WHERE blog_id = $1;`

	updateBlogState = `UPDATE blogs
    SET state = $1, updated_at = NOW()
    WHERE blog_id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// blogListColumns is the projection used by the listing query: the full blog
// row plus the expanded author fields from the joined users table.
var blogListColumns = []string{
	"b.blog_id", "b.title", "b.description", "b.body", "b.author_id", "b.state",
	"b.read_count", "b.reading_time", "array_to_string(b.tags, ',')",
	"b.created_at", "b.updated_at",
	"u.first_name", "u.last_name", "u.email",
}

// blogSortColumns whitelists the sort keys accepted from the query string and
// maps them to qualified column names. Anything else falls back to creation
// time.
var blogSortColumns = map[string]string{
	models.SortByCreatedAt:   "b.created_at",
	models.SortByReadCount:   "b.read_count",
	models.SortByReadingTime: "b.reading_time",
}

// blogFilterConditions translates a [models.BlogFilter] into the WHERE
// predicates shared by the listing and counting queries.
func blogFilterConditions(filter models.BlogFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 4)

	if filter.State != "" {
		conditions = append(conditions, sq.Eq{"b.state": string(filter.State)})
	}

	if filter.AuthorIDs != nil {
		conditions = append(conditions, sq.Eq{"b.author_id": filter.AuthorIDs})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"b.title": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM unnest(b.tags) AS tag WHERE tag ILIKE ?)", pattern),
		})
	}

	if len(filter.Tags) > 0 {
		conditions = append(conditions, sq.Expr("b.tags && ?", filter.Tags))
	}

	return conditions
}

// buildListBlogsQuery builds the filtered, sorted, paginated SELECT over the
// blogs collection with the author reference expanded at read time.
func buildListBlogsQuery(filter models.BlogFilter) (string, []any, error) {
	builder := psql.
		Select(blogListColumns...).
		From("blogs b").
		Join("users u ON u.user_id = b.author_id")

	for _, condition := range blogFilterConditions(filter) {
		builder = builder.Where(condition)
	}

	sortColumn, ok := blogSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "b.created_at"
	}
	direction := "DESC"
	if filter.SortOrder == models.SortOrderAsc {
		direction = "ASC"
	}

	builder = builder.
		OrderBy(sortColumn + " " + direction).
		Limit(filter.Limit).
		Offset(filter.Offset())

	return builder.ToSql()
}

// buildCountBlogsQuery builds the COUNT(*) companion of the listing query,
// sharing the same WHERE predicates.
func buildCountBlogsQuery(filter models.BlogFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("blogs b")

	for _, condition := range blogFilterConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.ToSql()
}

// buildUpdateBlogQuery dynamically builds the partial UPDATE applied by
// [BlogRepository.UpdateBlog]. Only non-nil fields produce SET clauses;
// updated_at is always refreshed.
func buildUpdateBlogQuery(update models.BlogUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.
		Update("blogs").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}
	if update.ReadingTime != nil {
		builder = builder.Set("reading_time", *update.ReadingTime)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", *update.Tags)
	}
	if update.State != nil {
		builder = builder.Set("state", string(*update.State))
	}

	builder = builder.Where(sq.Eq{"blog_id": update.BlogID})

	return builder.ToSql()
}

// splitTags converts the comma-joined tag projection produced by
// array_to_string back into a slice. An empty projection yields an empty,
// non-nil slice so responses always serialize tags as a JSON array.
func splitTags(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}
