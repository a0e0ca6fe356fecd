package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, errs := validators.ParseListQuery(r.URL.Query())
	if len(errs) > 0 {
		respondQueryErrors(w, r, errs)
		return
	}

	page, err := h.services.BlogService.ListPublished(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing published blogs failed")
		respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
		return
	}

	respondList(w, r, page)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, ok := parseBlogID(r)
	if !ok {
		respondError(w, r, http.StatusNotFound, "Blog not found or not published")
		return
	}

	blog, err := h.services.BlogService.GetPublishedBlog(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBlogNotFound):
			respondError(w, r, http.StatusNotFound, "Blog not found or not published")
			return
		default:
			log.Err(err).Msg("fetching published blog failed")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	respondSuccess(w, r, http.StatusOK, "", models.BlogData{Blog: blog})
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	var request models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if errs := validators.ValidateCreateBlog(request); len(errs) > 0 {
		respondValidationErrors(w, r, errs)
		return
	}

	blog, err := h.services.BlogService.CreateBlog(ctx, author, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTitleAlreadyExists):
			log.Err(err).Msg("title already exists")
			respondError(w, r, http.StatusConflict, "Blog with this title already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during blog creation")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	respondSuccess(w, r, http.StatusCreated, "Blog created successfully", models.BlogData{Blog: blog})
}

func (h *Handler) myBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	filter, errs := validators.ParseListQuery(r.URL.Query())
	if len(errs) > 0 {
		respondQueryErrors(w, r, errs)
		return
	}

	page, err := h.services.BlogService.ListOwn(ctx, owner.UserID, filter)
	if err != nil {
		log.Err(err).Msg("listing own blogs failed")
		respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
		return
	}

	respondList(w, r, page)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	blogID, ok := parseBlogID(r)
	if !ok {
		respondError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	var request models.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if errs := validators.ValidateUpdateBlog(request); len(errs) > 0 {
		respondValidationErrors(w, r, errs)
		return
	}

	blog, err := h.services.BlogService.UpdateBlog(ctx, caller.UserID, blogID, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBlogNotFound):
			respondError(w, r, http.StatusNotFound, "Blog not found")
			return
		case errors.Is(err, service.ErrNotBlogOwner):
			respondError(w, r, http.StatusForbidden, "You can only update your own blogs")
			return
		case errors.Is(err, store.ErrTitleAlreadyExists):
			log.Err(err).Msg("title already exists")
			respondError(w, r, http.StatusConflict, "Blog with this title already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during blog update")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	respondSuccess(w, r, http.StatusOK, "Blog updated successfully", models.BlogData{Blog: blog})
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	blogID, ok := parseBlogID(r)
	if !ok {
		respondError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	if err := h.services.BlogService.DeleteBlog(ctx, caller.UserID, blogID); err != nil {
		switch {
		case errors.Is(err, store.ErrBlogNotFound):
			respondError(w, r, http.StatusNotFound, "Blog not found")
			return
		case errors.Is(err, service.ErrNotBlogOwner):
			respondError(w, r, http.StatusForbidden, "You can only delete your own blogs")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during blog deletion")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateBlogState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	blogID, ok := parseBlogID(r)
	if !ok {
		respondError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	var request models.UpdateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	blog, err := h.services.BlogService.UpdateBlogState(ctx, caller.UserID, blogID, request.State)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBlogState):
			respondError(w, r, http.StatusBadRequest, "State must be either draft or published")
			return
		case errors.Is(err, store.ErrBlogNotFound):
			respondError(w, r, http.StatusNotFound, "Blog not found")
			return
		case errors.Is(err, service.ErrNotBlogOwner):
			respondError(w, r, http.StatusForbidden, "You can only update your own blogs")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during blog state update")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	message := "Blog unpublished successfully"
	if blog.State == models.StatePublished {
		message = "Blog published successfully"
	}

	respondSuccess(w, r, http.StatusOK, message, models.BlogData{Blog: blog})
}

// parseBlogID extracts the numeric blog identifier from the route. A
// malformed identifier is indistinguishable from a missing blog for callers.
func parseBlogID(r *http.Request) (int64, bool) {
	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || blogID < 1 {
		return 0, false
	}
	return blogID, true
}
