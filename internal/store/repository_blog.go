package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/jackc/pgerrcode"
)

// blogRepository is the PostgreSQL-backed implementation of [BlogRepository].
// It executes all blog-post CRUD operations against the "blogs" table using
// the embedded [*DB] connection; read paths join the "users" table to expand
// the author reference in the same round trip.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (blog_id, author ids, filter shape, etc.).
type blogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] backed by the provided
// database connection and logger.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows so the blog projection can be
// scanned by a single helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBlog reads one row of the joined blog projection. Tags arrive as a
// comma-joined string (array_to_string) and are split back into a slice.
func scanBlog(row rowScanner) (models.Blog, error) {
	var blog models.Blog
	var tagsCSV string

	err := row.Scan(
		&blog.BlogID,
		&blog.Title,
		&blog.Description,
		&blog.Body,
		&blog.AuthorID,
		&blog.State,
		&blog.ReadCount,
		&blog.ReadingTime,
		&tagsCSV,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&blog.Author.FirstName,
		&blog.Author.LastName,
		&blog.Author.Email,
	)
	if err != nil {
		return models.Blog{}, err
	}

	blog.Tags = splitTags(tagsCSV)
	return blog, nil
}

// CreateBlog persists a new post and returns it with the server-assigned
// BlogID and timestamps. The unique index on title is authoritative for
// title uniqueness: a concurrent insert with the same title cannot slip past
// a pre-check because there is none.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTitleAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createBlog,
		blog.Title, blog.Description, blog.Body, blog.AuthorID,
		string(blog.State), blog.ReadingTime, blog.Tags,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Blog{}, ErrTitleAlreadyExists
		default:
			return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&blog.BlogID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Blog{}, ErrTitleAlreadyExists
		}

		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error: scanning error")
		return models.Blog{}, err
	}

	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	return blog, nil
}

// FindBlogByID retrieves a post by identifier regardless of its state, with
// the author reference expanded. Used for ownership checks and owner reads.
func (r *blogRepository) FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog, err := scanBlog(r.DB.QueryRowContext(ctx, findBlogByID, blogID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}

		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Int64("blog_id", blogID).Msg("failed to find blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// FetchPublishedBlog atomically increments the read counter of a published
// post and returns the updated record with the author expanded. The
// increment and the state check happen in one conditional UPDATE, so a draft
// or missing post is never modified and concurrent fetches each count
// exactly once.
func (r *blogRepository) FetchPublishedBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog, err := scanBlog(r.DB.QueryRowContext(ctx, fetchPublishedBlog, blogID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}

		log.Err(err).Str("func", "*blogRepository.FetchPublishedBlog").Int64("blog_id", blogID).Msg("failed to fetch published blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// ListBlogs returns one page of posts matching the filter plus the total
// number of matches. The count and page queries share the same WHERE
// predicates built by [blogFilterConditions].
func (r *blogRepository) ListBlogs(ctx context.Context, filter models.BlogFilter) ([]models.Blog, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountBlogsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to count blogs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 {
		return []models.Blog{}, 0, nil
	}

	listQuery, listArgs, err := buildListBlogsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, filter.Limit)
	for rows.Next() {
		blog, scanErr := scanBlog(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*blogRepository.ListBlogs").Msg("failed to scan blog row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, total, nil
}

// UpdateBlog applies a partial mutation built by [buildUpdateBlogQuery] and
// returns the refreshed record with the author expanded.
//
// Error handling:
//   - Empty update → [ErrNothingToUpdate].
//   - PostgreSQL unique_violation (23505) → [ErrTitleAlreadyExists].
//   - Zero affected rows → [ErrBlogNotFound].
func (r *blogRepository) UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBlogQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Blog{}, err
		}

		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Int64("blog_id", update.BlogID).Msg("failed to build update query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Blog{}, ErrTitleAlreadyExists
		}

		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Int64("blog_id", update.BlogID).Msg("failed to execute update")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Blog{}, ErrBlogNotFound
	}

	return r.FindBlogByID(ctx, update.BlogID)
}

// DeleteBlog removes the post with the given identifier.
// Returns [ErrBlogNotFound] when no row was deleted.
func (r *blogRepository) DeleteBlog(ctx context.Context, blogID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteBlog, blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Int64("blog_id", blogID).Msg("failed to delete blog")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// UpdateBlogState sets the lifecycle state of the post and returns the
// refreshed record. Returns [ErrBlogNotFound] when no row was updated.
func (r *blogRepository) UpdateBlogState(ctx context.Context, blogID int64, state models.BlogState) (models.Blog, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateBlogState, string(state), blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlogState").Int64("blog_id", blogID).Msg("failed to update blog state")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Blog{}, ErrBlogNotFound
	}

	return r.FindBlogByID(ctx, blogID)
}
