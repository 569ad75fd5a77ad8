package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/labyrinth-api/identity"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials hides whether the username or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth implements user registration and sign-in.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    zerolog.Logger
}

// NewAuthService constructs an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger zerolog.Logger) (i.Authenticator, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("user repository and tokenizer are required")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates and stores a new user.
func (a *Auth) Register(username, password string) error {
	user, err := identity.NewUser(identity.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(user); err != nil {
		return err
	}

	a.logger.Info().Str("username", username).Msg("user registered")
	return nil
}

// SignIn verifies the credentials and issues an access token.
func (a *Auth) SignIn(username, password string) (*identity.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	a.logger.Info().Str("username", username).Msg("user signed in")
	return user, token, nil
}
