package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidBlogState:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrNotBlogOwner:        http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrTitleAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBlogNotFound:       http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
