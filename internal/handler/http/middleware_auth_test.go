package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	router := newTestRouter(nil, nil)

	tests := map[string]map[string]string{
		"no header":   nil,
		"scheme only": {"Authorization": "Bearer"},
		"empty token": {"Authorization": "Bearer "},
	}

	for name, headers := range tests {
		t.Run(name, func(t *testing.T) {
			rec, reply := doRequest(t, router, http.MethodGet, "/api/auth/profile", "", headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "fail", reply.Status)
			assert.Equal(t, "Access token is required", reply.Message)
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	router := newTestRouter(auth, nil)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/auth/profile", "", bearerHeader())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", reply.Status)
	assert.Equal(t, "Token has expired", reply.Message)
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	router := newTestRouter(auth, nil)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/auth/profile", "", bearerHeader())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", reply.Status)
	assert.Equal(t, "Invalid token", reply.Message)
}

func TestAuth_DeletedSubject(t *testing.T) {
	auth := &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
		getUserByID: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	router := newTestRouter(auth, nil)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/auth/profile", "", bearerHeader())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", reply.Status)
	assert.Equal(t, "Invalid token - user not found", reply.Message)
}

func TestAuth_SubjectLookupFailure(t *testing.T) {
	auth := &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
		getUserByID: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	router := newTestRouter(auth, nil)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/auth/profile", "", bearerHeader())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", reply.Status)
	assert.Equal(t, "Token verification failed", reply.Message)
}

func TestAuthOptional_BrokenTokenIsIgnored(t *testing.T) {
	auth := &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	blog := &mockBlogService{
		listPublished: func(ctx context.Context, filter models.BlogFilter) (models.BlogPage, error) {
			return models.BlogPage{
				Blogs:      []models.Blog{},
				Pagination: models.Pagination{Page: 1, Limit: 20},
			}, nil
		},
	}
	router := newTestRouter(auth, blog)

	rec, reply := doRequest(t, router, http.MethodGet, "/api/blogs", "", bearerHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", reply.Status)
}
