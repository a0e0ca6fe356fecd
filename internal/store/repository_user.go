package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.Email, user.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the one
// provided, including the stored password hash so the service layer can
// verify credentials.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.FirstName, &foundUser.LastName, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.FirstName, &foundUser.LastName, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateUser persists the mutable profile fields (first name, last name,
// email) of an existing user and returns the refreshed record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - No matching row → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUser, user.FirstName, user.LastName, user.Email, user.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var updatedUser models.User
	if err := row.Scan(&updatedUser.UserID, &updatedUser.FirstName, &updatedUser.LastName, &updatedUser.Email, &updatedUser.PasswordHash, &updatedUser.CreatedAt, &updatedUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return updatedUser, nil
}

// FindUserIDsByName returns the identifiers of every user whose first or
// last name contains the fragment, matched case-insensitively. A fragment
// matching nobody yields an empty slice, not an error: the blog listing
// treats it as an empty result set.
func (r *userRepository) FindUserIDsByName(ctx context.Context, fragment string) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findUserIDsByName, "%"+fragment+"%")
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserIDsByName").Msg("failed to execute author lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserIDsByName").Msg("failed to scan author id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
