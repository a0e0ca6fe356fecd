package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], re-fetches the token's
// subject via [service.AuthService.GetUserByID], and — on success — stores
// the authenticated user in the request context under [utils.UserCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, the token is expired or invalid, or the token's
// subject no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			respondFail(w, r, http.StatusUnauthorized, "Access token is required")
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			respondFail(w, r, http.StatusUnauthorized, "Access token is required")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				respondFail(w, r, http.StatusUnauthorized, "Token has expired")
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				respondFail(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
		}

		// Re-fetch the subject so deleted accounts lose access immediately,
		// even while their tokens are still within the validity window.
		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Int64("user_id", token.UserID).Msg("token subject no longer exists")
				respondFail(w, r, http.StatusUnauthorized, "Invalid token - user not found")
				return
			default:
				log.Err(err).Msg("error occurred during user lookup")
				respondError(w, r, http.StatusInternalServerError, "Token verification failed")
				return
			}
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authOptional resolves the authenticated user when a valid bearer token is
// present but never rejects the request. Anonymous and broken-token requests
// proceed without a user in the context.
func (h *Handler) authOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts, and [ErrEmptyToken] if the second part
// exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
