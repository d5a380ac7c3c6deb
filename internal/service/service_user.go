package service

import (
	"context"
	"errors"
	"fmt"

	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/models"
)

// userService implements the admin console's account workflows on top of a
// UserRepository. Password hashing is delegated to the AuthService so the
// bcrypt parameters live in exactly one place.
type userService struct {
	userRepository store.UserRepository
	auth           AuthService
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, auth AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		auth:           auth,
		logger:         logger,
	}
}

// CreateUser validates and persists a new account.
//
// Username, name, and password must be non-blank and the role must be one of
// the known values, otherwise [ErrInvalidDataProvided]. The username is
// checked for duplicates before any hash is computed, so a duplicate attempt
// never spends bcrypt work; the unique constraint remains the final guard.
func (s *userService) CreateUser(ctx context.Context, username, name, password, role string, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || name == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := s.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", username).Msg("duplicate check failed")
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, err
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// UpdateUser changes name, role, and active for an existing account.
// The username is immutable and not part of this operation.
func (s *userService) UpdateUser(ctx context.Context, id int64, name, role string, active bool) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrInvalidDataProvided
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateUser(ctx, models.User{ID: id, Name: name, Role: role, Active: active}); err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return err
	}

	log.Info().Int64("id", id).Msg("user updated")
	return nil
}

// ResetPassword replaces the account's password hash. It is a separate
// action from UpdateUser, mirroring the admin console's distinct reset flow.
func (s *userService) ResetPassword(ctx context.Context, id int64, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return ErrInvalidDataProvided
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(ctx, id, hash); err != nil {
		log.Err(err).Int64("id", id).Msg("password reset ended with error")
		return err
	}

	log.Info().Int64("id", id).Msg("password reset")
	return nil
}

// DeleteUser removes the account and its assignments. The confirm flag must
// be set, otherwise [ErrConfirmationRequired] and nothing is mutated.
func (s *userService) DeleteUser(ctx context.Context, id int64, confirm bool) error {
	log := logger.FromContext(ctx)

	if !confirm {
		return ErrConfirmationRequired
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return err
	}

	log.Info().Int64("id", id).Msg("user deleted")
	return nil
}

// ListUsers returns every account ordered by username.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}
