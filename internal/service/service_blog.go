package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// blogService is the concrete implementation of BlogService. It owns the
// listing semantics (author-name resolution, forced published state,
// pagination metadata) and every ownership check on writes; the repositories
// stay free of business rules.
type blogService struct {
	blogRepository store.BlogRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given repositories.
func NewBlogService(blogRepository store.BlogRepository, userRepository store.UserRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListPublished returns one page of published posts matching the filter.
//
// The state restriction is forced to published regardless of what the filter
// carries, so drafts can never leak into the public listing. When the filter
// names an author fragment, it is resolved to user ids first; a fragment
// matching nobody short-circuits into an empty page without querying the
// blog collection, mirroring the "no author, no results" contract.
func (b *blogService) ListPublished(ctx context.Context, filter models.BlogFilter) (models.BlogPage, error) {
	log := logger.FromContext(ctx)

	filter.State = models.StatePublished

	if filter.AuthorName != "" {
		authorIDs, err := b.userRepository.FindUserIDsByName(ctx, filter.AuthorName)
		if err != nil {
			log.Err(err).Str("author", filter.AuthorName).Msg("author name resolution failed")
			return models.BlogPage{}, fmt.Errorf("author name resolution failed: %w", err)
		}

		if len(authorIDs) == 0 {
			return emptyPage(filter), nil
		}

		filter.AuthorIDs = authorIDs
	}

	return b.listPage(ctx, filter)
}

// ListOwn returns one page of the owner's posts, in any state unless the
// filter restricts one.
func (b *blogService) ListOwn(ctx context.Context, ownerID int64, filter models.BlogFilter) (models.BlogPage, error) {
	filter.AuthorIDs = []int64{ownerID}
	filter.AuthorName = ""
	filter.Search = ""
	filter.Tags = nil

	return b.listPage(ctx, filter)
}

// listPage runs the repository query and assembles pagination metadata:
// total matching count and total page count (ceiling of total/limit).
func (b *blogService) listPage(ctx context.Context, filter models.BlogFilter) (models.BlogPage, error) {
	log := logger.FromContext(ctx)

	blogs, total, err := b.blogRepository.ListBlogs(ctx, filter)
	if err != nil {
		log.Err(err).Msg("blog listing failed")
		return models.BlogPage{}, fmt.Errorf("blog listing failed: %w", err)
	}

	return models.BlogPage{
		Blogs: blogs,
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: totalPages(total, filter.Limit),
		},
	}, nil
}

// GetPublishedBlog fetches one published post by id, atomically incrementing
// its read counter as a side effect. A draft or unknown id fails with
// store.ErrBlogNotFound and changes nothing.
func (b *blogService) GetPublishedBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	blog, err := b.blogRepository.FetchPublishedBlog(ctx, blogID)
	if err != nil {
		return models.Blog{}, fmt.Errorf("published blog fetch failed: %w", err)
	}

	return blog, nil
}

// CreateBlog stores a new post owned by the author in draft state, deriving
// the reading time from the body and normalising tags to trimmed lowercase.
// Title uniqueness is enforced by the store's unique index.
func (b *blogService) CreateBlog(ctx context.Context, author models.User, request models.CreateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog := models.Blog{
		Title:       request.Title,
		Description: request.Description,
		Body:        request.Body,
		AuthorID:    author.UserID,
		State:       models.StateDraft,
		ReadingTime: models.EstimateReadingTime(request.Body),
		Tags:        models.NormalizeTags(request.Tags),
	}

	createdBlog, err := b.blogRepository.CreateBlog(ctx, blog)
	if err != nil {
		log.Err(err).Str("title", request.Title).Msg("blog creation ended with error")
		return models.Blog{}, fmt.Errorf("blog creation ended with error: %w", err)
	}

	createdBlog.Author = author.AsAuthor()

	return createdBlog, nil
}

// UpdateBlog applies a partial mutation to the caller's own post. The
// reading time is recomputed whenever the body changes; tags are normalised;
// a state change is validated against the two allowed values.
//
// Returns ErrNotBlogOwner when the caller does not own the post and
// ErrInvalidBlogState for an unknown state value.
func (b *blogService) UpdateBlog(ctx context.Context, callerID, blogID int64, request models.UpdateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if err := b.checkOwnership(ctx, callerID, blogID); err != nil {
		return models.Blog{}, err
	}

	update := models.BlogUpdate{
		BlogID:      blogID,
		Title:       request.Title,
		Description: request.Description,
		Body:        request.Body,
	}

	if request.Body != nil {
		readingTime := models.EstimateReadingTime(*request.Body)
		update.ReadingTime = &readingTime
	}

	if request.Tags != nil {
		tags := models.NormalizeTags(*request.Tags)
		update.Tags = &tags
	}

	if request.State != nil {
		state := models.BlogState(*request.State)
		if !state.IsValid() {
			return models.Blog{}, ErrInvalidBlogState
		}
		update.State = &state
	}

	updatedBlog, err := b.blogRepository.UpdateBlog(ctx, update)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update ended with error")
		return models.Blog{}, fmt.Errorf("blog update ended with error: %w", err)
	}

	return updatedBlog, nil
}

// DeleteBlog removes the caller's own post.
// Returns ErrNotBlogOwner when the caller does not own it.
func (b *blogService) DeleteBlog(ctx context.Context, callerID, blogID int64) error {
	log := logger.FromContext(ctx)

	if err := b.checkOwnership(ctx, callerID, blogID); err != nil {
		return err
	}

	if err := b.blogRepository.DeleteBlog(ctx, blogID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog deletion ended with error")
		return fmt.Errorf("blog deletion ended with error: %w", err)
	}

	return nil
}

// UpdateBlogState transitions the caller's own post between draft and
// published. Any other state value fails with ErrInvalidBlogState before
// the store is touched.
func (b *blogService) UpdateBlogState(ctx context.Context, callerID, blogID int64, state string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	newState := models.BlogState(state)
	if !newState.IsValid() {
		return models.Blog{}, ErrInvalidBlogState
	}

	if err := b.checkOwnership(ctx, callerID, blogID); err != nil {
		return models.Blog{}, err
	}

	updatedBlog, err := b.blogRepository.UpdateBlogState(ctx, blogID, newState)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Str("state", state).Msg("blog state change ended with error")
		return models.Blog{}, fmt.Errorf("blog state change ended with error: %w", err)
	}

	return updatedBlog, nil
}

// checkOwnership loads the post and verifies the caller owns it. A missing
// post surfaces as store.ErrBlogNotFound so the transport can answer 404
// before 403.
func (b *blogService) checkOwnership(ctx context.Context, callerID, blogID int64) error {
	blog, err := b.blogRepository.FindBlogByID(ctx, blogID)
	if err != nil {
		return fmt.Errorf("blog lookup failed: %w", err)
	}

	if blog.AuthorID != callerID {
		return ErrNotBlogOwner
	}

	return nil
}

// emptyPage builds the zero-result page for filters that can never match.
func emptyPage(filter models.BlogFilter) models.BlogPage {
	return models.BlogPage{
		Blogs: []models.Blog{},
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: 0,
			Pages: 0,
		},
	}
}

// totalPages returns ceil(total/limit); zero when nothing matched.
func totalPages(total int64, limit uint64) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
