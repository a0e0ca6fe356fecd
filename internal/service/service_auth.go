package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates,
// and the JWT token lifecycle using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is irreversibly hashed with bcrypt before persistence;
// the plaintext never leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        strings.ToLower(strings.TrimSpace(request.Email)),
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password
// against the stored bcrypt hash. bcrypt performs the comparison in
// constant time; the plaintext is never compared directly.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the hash verification fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, request.Password) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUserByID re-fetches a user from the store. The auth middleware uses it
// to resolve a verified token's subject, so a deleted account invalidates
// otherwise-valid tokens.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile overlays the non-empty fields of the request onto the stored
// profile and persists the result. Email collisions surface as
// store.ErrEmailAlreadyExists via the unique index.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	currentUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if request.FirstName != "" {
		currentUser.FirstName = request.FirstName
	}
	if request.LastName != "" {
		currentUser.LastName = request.LastName
	}
	if request.Email != "" {
		currentUser.Email = strings.ToLower(strings.TrimSpace(request.Email))
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, currentUser)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Expiry is reported distinctly from every other failure so
// the transport layer can tell the caller which of the two happened.
//
// Returns the decoded token model on success, ErrTokenIsExpired for an
// expired token, or ErrTokenIsInvalid for any other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
