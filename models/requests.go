package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the JSON body of PATCH /api/auth/profile.
// Password is decoded only so the request can be rejected explicitly:
// password changes are not allowed through the profile endpoint.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CreateBlogRequest is the JSON body of POST /api/blogs.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

// UpdateBlogRequest is the JSON body of PUT /api/blogs/{id}.
// Nil fields are left unchanged.
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	Tags        *[]string `json:"tags"`
	State       *string   `json:"state"`
}

// UpdateStateRequest is the JSON body of PUT /api/blogs/{id}/state.
type UpdateStateRequest struct {
	State string `json:"state"`
}

// Sort keys accepted by the blog listing endpoints.
const (
	SortByCreatedAt   = "created_at"
	SortByReadCount   = "read_count"
	SortByReadingTime = "reading_time"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Listing defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	MaxSearchLength = 100
)

// BlogFilter is the parsed, validated set of listing parameters translated
// by the store into a filtered, sorted, paginated read.
type BlogFilter struct {
	// Page is 1-based; Limit is the page size (1–100).
	Page  uint64
	Limit uint64

	// SortBy is one of the SortBy* constants; SortOrder is asc or desc.
	SortBy    string
	SortOrder string

	// Search matches case-insensitively against title or tag membership.
	Search string

	// AuthorName is a first/last name fragment resolved by the service
	// into AuthorIDs before the filter reaches the store. A fragment
	// matching nobody yields an empty page, not an error.
	AuthorName string

	// AuthorIDs restricts the result to posts owned by any of the listed
	// users. Populated by the service after resolving AuthorName, or set
	// to the caller for "my blogs" listings.
	AuthorIDs []int64

	// Tags restricts the result to posts whose tag set intersects it.
	// Entries are expected to be trimmed and lowercased already.
	Tags []string

	// State restricts the result to a single lifecycle state. Empty means
	// no state restriction (used only for owner listings).
	State BlogState
}

// Offset returns the row offset for the requested page.
func (f BlogFilter) Offset() uint64 {
	if f.Page == 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
