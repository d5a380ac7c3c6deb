package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dashportal/internal/config"
	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/internal/utils"
	"dashportal/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and session token lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a session remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a username/password pair against stored, active users.
//
// Every failure mode — unknown user, inactive user, wrong password — is
// collapsed into [ErrInvalidCredentials] so the caller cannot enumerate
// usernames. The distinguishing detail is logged server-side only.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown user")
			return models.Session{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user lookup failed during login")
		return models.Session{}, err
	}

	if !user.Active {
		log.Warn().Int64("id", user.ID).Str("username", username).Msg("login attempt for inactive user")
		return models.Session{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", user.ID).Str("username", username).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.SessionFromUser(user), nil
}

// Session rebuilds the session view for an already-authenticated user id.
// It is called by the session middleware on every request, so deactivating
// or deleting a user revokes access immediately.
func (a *authService) Session(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Session{}, ErrInvalidCredentials
		}

		log.Err(err).Int64("id", userID).Msg("user lookup failed during session refresh")
		return models.Session{}, err
	}

	if !user.Active {
		log.Warn().Int64("id", user.ID).Msg("session refresh for inactive user")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.SessionFromUser(user), nil
}

// CreateToken issues a signed session JWT for the given session.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, session models.Session) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, session.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// HashPassword derives a bcrypt hash from the plain-text password. The
// library generates a fresh salt on every call, so hashing the same
// password twice never produces the same output.
func (a *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
