package models

import (
	"math"
	"strings"
	"time"
)

// BlogState is the visibility flag of a blog post.
type BlogState string

const (
	// StateDraft marks a post visible to its author only.
	StateDraft BlogState = "draft"

	// StatePublished marks a post publicly listed and fetchable.
	StatePublished BlogState = "published"
)

// IsValid reports whether s is one of the two allowed lifecycle states.
func (s BlogState) IsValid() bool {
	return s == StateDraft || s == StatePublished
}

// wordsPerMinute is the reading speed used to derive the reading-time
// estimate from a post body.
const wordsPerMinute = 200

// Blog represents a single post owned by a user.
type Blog struct {
	// BlogID is the internal unique identifier of the post.
	BlogID int64 `json:"id"`

	// Title is unique across all posts.
	Title string `json:"title"`

	// Description is an optional short summary.
	Description string `json:"description,omitempty"`

	// Body is the full post text.
	Body string `json:"body"`

	// AuthorID references the owning user.
	AuthorID int64 `json:"author_id"`

	// Author is the expanded author reference, populated at read time.
	Author Author `json:"author"`

	// State is the lifecycle state, draft or published.
	State BlogState `json:"state"`

	// ReadCount is the number of times the published post has been
	// fetched by id. Monotonically non-decreasing.
	ReadCount int64 `json:"read_count"`

	// ReadingTime is the estimated minutes to read the post, derived
	// from the body's word count.
	ReadingTime int64 `json:"reading_time"`

	// Tags is the set of lowercase tags attached to the post.
	Tags []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// EstimateReadingTime derives the reading-time estimate in minutes for the
// given post body: ceil(wordCount / 200). An empty body estimates to zero.
func EstimateReadingTime(body string) int64 {
	words := len(strings.Fields(body))
	return int64(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

// NormalizeTags trims and lowercases every tag, dropping entries that are
// empty after trimming. The result preserves the original order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		normalized = append(normalized, tag)
	}
	return normalized
}

// BlogUpdate describes a partial mutation of a post. Nil fields are left
// unchanged; ReadingTime is populated by the service whenever Body is set.
type BlogUpdate struct {
	BlogID      int64
	Title       *string
	Description *string
	Body        *string
	Tags        *[]string
	State       *BlogState
	ReadingTime *int64
}

// IsEmpty reports whether the update carries no field changes at all.
func (u BlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Body == nil &&
		u.Tags == nil && u.State == nil
}
