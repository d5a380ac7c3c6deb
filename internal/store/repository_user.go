package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dashportal/internal/logger"
	"dashportal/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup, mutation, and deletion against the
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
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Name, user.PasswordHash, user.Role, user.Active)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Name, &created.PasswordHash, &created.Role, &created.Active, &created.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning created user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// given value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning found user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the user record with the given id.
//
// Error handling mirrors [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("id", id).Msg("error: scanning found user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns every user ordered by username.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User

	for rows.Next() {
		var user models.User

		scanErr := rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("failed to scan user row: %w", scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating user rows: %w", rowsErr)
	}

	return users, nil
}

// UpdateUser persists name, role, and active for the user identified by
// user.ID. Username is immutable and never part of the statement.
//
// Returns [ErrUserNotFound] when no row matches the id.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUser, user.Name, user.Role, user.Active, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", user.ID).Msg("failed to execute update for user")
		return fmt.Errorf("failed to update user (id=%d): %w", user.ID, err)
	}

	return checkAffected(result, ErrUserNotFound)
}

// UpdateUserPassword replaces the stored password hash of the user.
// It is a separate action from [userRepository.UpdateUser] so a password
// reset never races with a profile edit.
func (r *userRepository) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Int64("id", id).Msg("failed to execute password update")
		return fmt.Errorf("failed to update password (id=%d): %w", id, err)
	}

	return checkAffected(result, ErrUserNotFound)
}

// DeleteUser removes the user's assignment rows first, then the user row,
// inside one transaction, so no assignment can survive its owner.
//
// Returns [ErrUserNotFound] when no user row matches the id; the transaction
// is rolled back in that case.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearAssignmentsByUser, id); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("failed to delete user assignments")
		return fmt.Errorf("failed to delete user assignments (id=%d): %w", id, err)
	}

	result, err := tx.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("failed to delete user")
		return fmt.Errorf("failed to delete user (id=%d): %w", id, err)
	}

	if err := checkAffected(result, ErrUserNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// checkAffected maps a zero-rows-affected result to the given sentinel.
func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
