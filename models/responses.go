package models

// Response statuses used in the envelope of every JSON reply.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFail    = "fail"
)

// Response is the uniform envelope returned by every endpoint:
// {status, message?, data?, errors?}. List endpoints additionally populate
// Results with the number of items on the current page.
type Response struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Results *int     `json:"results,omitempty"`
	Token   string   `json:"token,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Pagination is the paging metadata attached to list responses.
type Pagination struct {
	// Page is the current 1-based page number.
	Page uint64 `json:"page"`

	// Limit is the requested page size.
	Limit uint64 `json:"limit"`

	// Total is the number of posts matching the filter across all pages.
	Total int64 `json:"total"`

	// Pages is ceil(Total / Limit).
	Pages int64 `json:"pages"`
}

// BlogPage is a single page of posts plus its pagination metadata,
// serialized under the "data" key of the response envelope.
type BlogPage struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// UserData wraps a user for the {data:{user}} response shape.
type UserData struct {
	User User `json:"user"`
}

// BlogData wraps a blog for the {data:{blog}} response shape.
type BlogData struct {
	Blog Blog `json:"blog"`
}
