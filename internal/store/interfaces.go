package store

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email, including the
	// password hash for credential verification.
	// Returns [ErrNoUserWasFound] if no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier.
	// Returns [ErrNoUserWasFound] if no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser persists profile changes (names, email) for an existing
	// user. Returns [ErrEmailAlreadyExists] if the new email collides with
	// another account, [ErrNoUserWasFound] if the user does not exist.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserIDsByName returns the identifiers of all users whose first or
	// last name matches the fragment case-insensitively. An empty result is
	// not an error.
	FindUserIDsByName(ctx context.Context, fragment string) ([]int64, error)
}

// BlogRepository is the persistence contract for blog posts. Read methods
// expand the author reference into embedded name/email fields.
type BlogRepository interface {
	// CreateBlog persists a new post and returns it with server-assigned
	// fields populated. Returns [ErrTitleAlreadyExists] on a duplicate title.
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)

	// FindBlogByID returns the post with the given identifier regardless of
	// state. Returns [ErrBlogNotFound] if it does not exist.
	FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error)

	// FetchPublishedBlog atomically increments the read counter of a
	// published post and returns the updated record. Returns
	// [ErrBlogNotFound] if the post does not exist or is not published;
	// in that case no state is changed.
	FetchPublishedBlog(ctx context.Context, blogID int64) (models.Blog, error)

	// ListBlogs returns one page of posts matching the filter plus the
	// total number of matches across all pages.
	ListBlogs(ctx context.Context, filter models.BlogFilter) ([]models.Blog, int64, error)

	// UpdateBlog applies a partial mutation and returns the updated post.
	// Returns [ErrBlogNotFound], [ErrTitleAlreadyExists], or
	// [ErrNothingToUpdate] as appropriate.
	UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error)

	// DeleteBlog removes the post. Returns [ErrBlogNotFound] if it does
	// not exist.
	DeleteBlog(ctx context.Context, blogID int64) error

	// UpdateBlogState sets the lifecycle state of the post and returns the
	// updated record. Returns [ErrBlogNotFound] if it does not exist.
	UpdateBlogState(ctx context.Context, blogID int64, state models.BlogState) (models.Blog, error)
}
