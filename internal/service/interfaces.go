package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// AuthService covers user registration, credential verification, profile
// management, and the JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account with an irreversibly hashed
	// password. Fails with store.ErrEmailAlreadyExists on a duplicate email.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials against the stored bcrypt
	// hash. Fails with store.ErrNoUserWasFound or ErrWrongPassword; the
	// transport layer reports both identically.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// GetUserByID re-fetches the user referenced by a verified token.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile overlays the non-empty fields of the request onto the
	// stored profile. Password changes are rejected upstream by validation.
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)

	// CreateToken issues a signed, time-limited JWT whose subject is the
	// user identifier.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw JWT string. Fails with ErrTokenIsExpired
	// or ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BlogService covers blog-post CRUD, the listing query builder semantics,
// and ownership enforcement on writes.
type BlogService interface {
	// ListPublished returns one page of published posts. The filter's
	// AuthorName fragment is resolved to author ids first; the state
	// restriction is forced to published regardless of input.
	ListPublished(ctx context.Context, filter models.BlogFilter) (models.BlogPage, error)

	// ListOwn returns one page of the caller's own posts, optionally
	// restricted to a single state.
	ListOwn(ctx context.Context, ownerID int64, filter models.BlogFilter) (models.BlogPage, error)

	// GetPublishedBlog fetches one published post by id and atomically
	// increments its read counter. Fails with store.ErrBlogNotFound for a
	// draft or unknown id without changing any state.
	GetPublishedBlog(ctx context.Context, blogID int64) (models.Blog, error)

	// CreateBlog stores a new draft post owned by the author, deriving the
	// reading time from the body and normalising tags. Fails with
	// store.ErrTitleAlreadyExists on a duplicate title.
	CreateBlog(ctx context.Context, author models.User, request models.CreateBlogRequest) (models.Blog, error)

	// UpdateBlog applies a partial mutation to the caller's own post,
	// recomputing the reading time whenever the body changes. Fails with
	// ErrNotBlogOwner for non-owners.
	UpdateBlog(ctx context.Context, callerID, blogID int64, request models.UpdateBlogRequest) (models.Blog, error)

	// DeleteBlog removes the caller's own post. Fails with ErrNotBlogOwner
	// for non-owners.
	DeleteBlog(ctx context.Context, callerID, blogID int64) error

	// UpdateBlogState transitions the caller's own post between draft and
	// published. Fails with ErrInvalidBlogState for any other value and
	// ErrNotBlogOwner for non-owners.
	UpdateBlogState(ctx context.Context, callerID, blogID int64, state string) (models.Blog, error)
}
