package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/store"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService on top of a UserRepository. New
// passwords are stored as bcrypt hashes; records holding a legacy SHA-256
// digest are still accepted at login.
type authService struct {
	userRepository store.UserRepository

	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService that hashes new passwords with
// bcrypt at cfg.PasswordHashCost.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser stores user with a bcrypt hash of user.Password.
//
// Returns:
//   - ErrInvalidDataProvided if the password cannot be hashed (longer than
//     72 bytes);
//   - a wrapped store error, e.g. [store.ErrUserAlreadyExists].
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", registeredUser.Email).Msg("user registered")
	return withoutSecrets(registeredUser), nil
}

// Login finds the user by email and verifies the password.
//
// Returns a wrapped [store.ErrNoUserWasFound] for unknown emails and
// ErrWrongPassword when the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !passwordMatches(foundUser.PasswordHash, user.Password) {
		log.Warn().Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return withoutSecrets(foundUser), nil
}

// passwordMatches compares password with a stored bcrypt hash or legacy
// hex SHA-256 digest.
func passwordMatches(stored, password string) bool {
	if utils.IsLegacyDigest(stored) {
		digest := utils.LegacyDigest(password)
		return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
	}

	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func withoutSecrets(user models.User) models.User {
	return models.User{Name: user.Name, Email: user.Email}
}
