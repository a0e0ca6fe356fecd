package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if errs := validators.ValidateRegister(request); len(errs) > 0 {
		log.Debug().Strs("errors", errs).Msg("registration request failed validation")
		respondValidationErrors(w, r, errs)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			respondError(w, r, http.StatusConflict, "User with this email already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	respondToken(w, r, http.StatusCreated, "User registered successfully", token.SignedString, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if errs := validators.ValidateLogin(request); len(errs) > 0 {
		respondValidationErrors(w, r, errs)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			respondError(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	respondToken(w, r, http.StatusOK, "Login successful", token.SignedString, foundUser)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	respondSuccess(w, r, http.StatusOK, "", models.UserData{User: user})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondFail(w, r, http.StatusUnauthorized, "Access token is required")
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	// Password changes go through a dedicated flow, never the profile update.
	if request.Password != "" {
		respondError(w, r, http.StatusBadRequest, "Password updates not allowed through this endpoint")
		return
	}

	if errs := validators.ValidateUpdateProfile(request); len(errs) > 0 {
		respondValidationErrors(w, r, errs)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, user.UserID, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			respondError(w, r, http.StatusConflict, "User with this email already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			respondError(w, r, statusFromError(err), http.StatusText(statusFromError(err)))
			return
		}
	}

	respondSuccess(w, r, http.StatusOK, "Profile updated successfully", models.UserData{User: updatedUser})
}
