package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// respond serialises the envelope and logs write failures. Every handler
// response goes through this single exit point.
func respond(w http.ResponseWriter, r *http.Request, response models.Response, statusCode int) {
	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func respondSuccess(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	respond(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: message,
		Data:    data,
	}, statusCode)
}

// respondToken is the register/login response: token and public profile
// travel together.
func respondToken(w http.ResponseWriter, r *http.Request, statusCode int, message string, token string, user models.User) {
	respond(w, r, models.Response{
		Status:  models.StatusSuccess,
		Message: message,
		Token:   token,
		Data:    models.UserData{User: user},
	}, statusCode)
}

func respondList(w http.ResponseWriter, r *http.Request, page models.BlogPage) {
	results := len(page.Blogs)
	respond(w, r, models.Response{
		Status:  models.StatusSuccess,
		Results: &results,
		Data:    page,
	}, http.StatusOK)
}

func respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	respond(w, r, models.Response{
		Status:  models.StatusError,
		Message: message,
	}, statusCode)
}

// respondValidationErrors returns the collected validation messages in the
// order they were produced.
func respondValidationErrors(w http.ResponseWriter, r *http.Request, errs []string) {
	respond(w, r, models.Response{
		Status:  models.StatusError,
		Message: "Validation failed",
		Errors:  errs,
	}, http.StatusBadRequest)
}

// respondQueryErrors is the listing-endpoint variant of validation failure,
// produced by query string parsing rather than a request body.
func respondQueryErrors(w http.ResponseWriter, r *http.Request, errs []string) {
	respond(w, r, models.Response{
		Status:  models.StatusError,
		Message: "Invalid query parameters",
		Errors:  errs,
	}, http.StatusBadRequest)
}

func respondFail(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	respond(w, r, models.Response{
		Status:  models.StatusFail,
		Message: message,
	}, statusCode)
}
