package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func publishedBlog(blogID int64) models.Blog {
	return models.Blog{
		BlogID:   blogID,
		Title:    "Understanding Context",
		Body:     "body text long enough",
		AuthorID: 42,
		Author:   models.Author{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
		State:    models.StatePublished,
		Tags:     []string{"go"},
	}
}

func TestListBlogs(t *testing.T) {
	blog := &mockBlogService{
		listPublished: func(ctx context.Context, filter models.BlogFilter) (models.BlogPage, error) {
			assert.Equal(t, uint64(2), filter.Page)
			assert.Equal(t, uint64(1), filter.Limit)
			return models.BlogPage{
				Blogs: []models.Blog{publishedBlog(2)},
				Pagination: models.Pagination{
					Page:  2,
					Limit: 1,
					Total: 3,
					Pages: 3,
				},
			}, nil
		},
	}
	router := newTestRouter(nil, blog)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/blogs?page=2&limit=1", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", reply.Status)
	require.NotNil(t, reply.Results)
	assert.Equal(t, 1, *reply.Results)

	var page models.BlogPage
	require.NoError(t, json.Unmarshal(reply.Data, &page))
	require.Len(t, page.Blogs, 1)
	assert.Equal(t, int64(2), page.Blogs[0].BlogID)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, int64(3), page.Pagination.Pages)
}

func TestListBlogs_InvalidQuery(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/blogs?page=0&limit=500", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "Invalid query parameters", reply.Message)
	assert.Len(t, reply.Errors, 2)
}

func TestGetBlog(t *testing.T) {
	blog := &mockBlogService{
		getPublishedBlog: func(ctx context.Context, blogID int64) (models.Blog, error) {
			found := publishedBlog(blogID)
			found.ReadCount = 5
			return found, nil
		},
	}
	router := newTestRouter(nil, blog)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/blogs/7", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", reply.Status)

	var data models.BlogData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, int64(7), data.Blog.BlogID)
	assert.Equal(t, int64(5), data.Blog.ReadCount)
}

func TestGetBlog_NotFound(t *testing.T) {
	blog := &mockBlogService{
		getPublishedBlog: func(ctx context.Context, blogID int64) (models.Blog, error) {
			return models.Blog{}, store.ErrBlogNotFound
		},
	}
	router := newTestRouter(nil, blog)

	for _, target := range []string{"/api/blogs/99", "/api/blogs/abc"} {
		rec, reply := doRequest(t, router, http.MethodGet, target, "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "error", reply.Status)
		assert.Equal(t, "Blog not found or not published", reply.Message)
	}
}

func TestCreateBlog(t *testing.T) {
	blog := &mockBlogService{
		createBlogFn: func(ctx context.Context, author models.User, request models.CreateBlogRequest) (models.Blog, error) {
			assert.Equal(t, int64(42), author.UserID)
			created := publishedBlog(7)
			created.Title = request.Title
			created.State = models.StateDraft
			return created, nil
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPost, "/api/blogs",
		`{"title":"Understanding Context","body":"body text long enough","tags":["go"]}`, bearerHeader())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", reply.Status)
	assert.Equal(t, "Blog created successfully", reply.Message)

	var data models.BlogData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, int64(7), data.Blog.BlogID)
	assert.Equal(t, models.StateDraft, data.Blog.State)
}

func TestCreateBlog_NoToken(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec, reply := doRequest(t, router, http.MethodPost, "/api/blogs",
		`{"title":"Understanding Context","body":"body text long enough"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", reply.Status)
	assert.Equal(t, "Access token is required", reply.Message)
}

func TestCreateBlog_DuplicateTitle(t *testing.T) {
	blog := &mockBlogService{
		createBlogFn: func(ctx context.Context, author models.User, request models.CreateBlogRequest) (models.Blog, error) {
			return models.Blog{}, store.ErrTitleAlreadyExists
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPost, "/api/blogs",
		`{"title":"Understanding Context","body":"body text long enough"}`, bearerHeader())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "Blog with this title already exists", reply.Message)
}

func TestCreateBlog_ValidationFailed(t *testing.T) {
	router := newTestRouter(authedMock(testUser()), nil)

	rec, reply := doRequest(t, router, http.MethodPost, "/api/blogs",
		`{"title":"abc","body":"short"}`, bearerHeader())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "Validation failed", reply.Message)
	assert.NotEmpty(t, reply.Errors)
}

func TestMyBlogs(t *testing.T) {
	blog := &mockBlogService{
		listOwn: func(ctx context.Context, ownerID int64, filter models.BlogFilter) (models.BlogPage, error) {
			assert.Equal(t, int64(42), ownerID)
			draft := publishedBlog(7)
			draft.State = models.StateDraft
			return models.BlogPage{
				Blogs:      []models.Blog{draft},
				Pagination: models.Pagination{Page: 1, Limit: 20, Total: 1, Pages: 1},
			}, nil
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/blogs/user/me", "", bearerHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", reply.Status)
	require.NotNil(t, reply.Results)
	assert.Equal(t, 1, *reply.Results)
}

func TestUpdateBlog(t *testing.T) {
	blog := &mockBlogService{
		updateBlogFn: func(ctx context.Context, callerID, blogID int64, request models.UpdateBlogRequest) (models.Blog, error) {
			assert.Equal(t, int64(42), callerID)
			assert.Equal(t, int64(7), blogID)
			updated := publishedBlog(blogID)
			updated.Title = *request.Title
			return updated, nil
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/7",
		`{"title":"A fresh title"}`, bearerHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", reply.Status)
	assert.Equal(t, "Blog updated successfully", reply.Message)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	blog := &mockBlogService{
		updateBlogFn: func(ctx context.Context, callerID, blogID int64, request models.UpdateBlogRequest) (models.Blog, error) {
			return models.Blog{}, store.ErrBlogNotFound
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/99",
		`{"title":"A fresh title"}`, bearerHeader())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "Blog not found", reply.Message)
}

func TestUpdateBlog_Forbidden(t *testing.T) {
	blog := &mockBlogService{
		updateBlogFn: func(ctx context.Context, callerID, blogID int64, request models.UpdateBlogRequest) (models.Blog, error) {
			return models.Blog{}, service.ErrNotBlogOwner
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/7",
		`{"title":"A fresh title"}`, bearerHeader())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "You can only update your own blogs", reply.Message)
}

func TestUpdateBlog_EmptyBody(t *testing.T) {
	router := newTestRouter(authedMock(testUser()), nil)

	rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/7", `{}`, bearerHeader())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", reply.Message)
	assert.Equal(t, []string{"At least one field must be provided"}, reply.Errors)
}

func TestDeleteBlog(t *testing.T) {
	blog := &mockBlogService{
		deleteBlogFn: func(ctx context.Context, callerID, blogID int64) error {
			assert.Equal(t, int64(42), callerID)
			assert.Equal(t, int64(7), blogID)
			return nil
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, _ := doRequest(t, router, http.MethodDelete, "/api/blogs/7", "", bearerHeader())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestDeleteBlog_Forbidden(t *testing.T) {
	blog := &mockBlogService{
		deleteBlogFn: func(ctx context.Context, callerID, blogID int64) error {
			return service.ErrNotBlogOwner
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodDelete, "/api/blogs/7", "", bearerHeader())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "You can only delete your own blogs", reply.Message)
}

func TestUpdateBlogState(t *testing.T) {
	tests := []struct {
		state       models.BlogState
		wantMessage string
	}{
		{models.StatePublished, "Blog published successfully"},
		{models.StateDraft, "Blog unpublished successfully"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			blog := &mockBlogService{
				updateBlogStateFn: func(ctx context.Context, callerID, blogID int64, state string) (models.Blog, error) {
					updated := publishedBlog(blogID)
					updated.State = models.BlogState(state)
					return updated, nil
				},
			}
			router := newTestRouter(authedMock(testUser()), blog)

			rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/7/state",
				`{"state":"`+string(tt.state)+`"}`, bearerHeader())

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "success", reply.Status)
			assert.Equal(t, tt.wantMessage, reply.Message)
		})
	}
}

func TestUpdateBlogState_InvalidState(t *testing.T) {
	blog := &mockBlogService{
		updateBlogStateFn: func(ctx context.Context, callerID, blogID int64, state string) (models.Blog, error) {
			return models.Blog{}, service.ErrInvalidBlogState
		},
	}
	router := newTestRouter(authedMock(testUser()), blog)

	rec, reply := doRequest(t, router, http.MethodPut, "/api/blogs/7/state",
		`{"state":"archived"}`, bearerHeader())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "State must be either draft or published", reply.Message)
}
