package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/crypto"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/store"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/internal/validators"
	"github.com/MKhiriev/go-user-lists/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer, when set, is embedded in every token as "iss" and
	// required on verification.
	tokenIssuer string

	// tokenDuration, when positive, sets "exp" on issued tokens and makes
	// the claim mandatory on verification.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser validates req, hashes the password and stores the new user.
//
// Returns:
//   - ErrPasswordsDoNotMatch if password2 is sent and differs from password.
//   - ErrInvalidDataProvided if username or password is missing or too long.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.User{}, mapValidationError(err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Username: req.Username, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Authenticate checks credentials against the stored hash.
//
// An unknown username and a wrong password both yield a *CredentialsError
// (matching ErrInvalidCredentials). A comparison runs in both cases so the
// two failures take the same time.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid login data")
		return models.User{}, mapValidationError(err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = a.hasher.Compare("", credentials.Password)
		return models.User{}, &CredentialsError{Message: "Unable to find user " + credentials.Username}
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = a.hasher.Compare(user.PasswordHash, credentials.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, &CredentialsError{Message: "Incorrect password for user " + credentials.Username}
	}
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return user, nil
}

// IssueToken signs a token carrying userID in the "_id" claim.
func (a *authService) IssueToken(ctx context.Context, userID string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenSignKeyNotSet
	}

	token, err := utils.GenerateJWTToken(userID, a.tokenSignKey, a.tokenIssuer, a.tokenDuration)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// VerifyToken validates tokenString and returns the user it was issued for.
// Any validation failure is normalised to ErrTokenIsInvalid.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenSignKeyNotSet
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenDuration > 0)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return token, nil
}

// mapValidationError translates validator errors into service errors.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrPasswordsDoNotMatch):
		return ErrPasswordsDoNotMatch
	case errors.Is(err, validators.ErrInvalidItemID):
		return ErrInvalidItemID
	case errors.Is(err, validators.ErrInvalidListKind):
		return fmt.Errorf("%w: %w", ErrInvalidListKind, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
