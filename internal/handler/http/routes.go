package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withRateLimit)
	router.Use(middleware.Recoverer)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// public blog reads; a valid token is honoured but never required
	router.Group(func(r chi.Router) {
		r.Use(h.authOptional)
		r.Get("/api/blogs", h.listBlogs)
		r.Get("/api/blogs/{id}", h.getBlog)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/profile", h.getProfile)
		r.Patch("/api/auth/profile", h.updateProfile)

		r.Post("/api/blogs", h.createBlog)
		r.Get("/api/blogs/user/me", h.myBlogs)
		r.Put("/api/blogs/{id}", h.updateBlog)
		r.Delete("/api/blogs/{id}", h.deleteBlog)
		r.Put("/api/blogs/{id}/state", h.updateBlogState)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}

// routeNotFound answers both unknown paths and unsupported methods with the
// same envelope, so unsupported methods do not leak route existence.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, fmt.Sprintf("Route %s not found", r.URL.Path))
}
