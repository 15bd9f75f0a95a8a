package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"mazao/config"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/domain/service"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// Login checks the credentials against the user store first, then against
// the configured admin credentials. The fallback keeps a fresh install
// reachable before any account row exists.
func (s *authService) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !s.hasher.Check(password, user.Password) {
			return nil, domainerrors.ErrInvalidCredentials
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = s.loginConfigured(ctx, username, password)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrap(err, "failed to look up user")
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &usecase.LoginResult{
		User:  user,
		Token: token,
	}, nil
}

// loginConfigured compares against the configured admin credential pair and
// provisions the account row on first successful login.
func (s *authService) loginConfigured(ctx context.Context, username, password string) (*entity.User, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password))
	if usernameOK&passwordOK != 1 {
		return nil, domainerrors.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	user := &entity.User{
		Username: username,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent first login may have provisioned the row already.
		if errors.Is(err, domainerrors.ErrConflict) {
			return s.userRepo.FindByUsername(ctx, username)
		}

		return nil, errors.Wrap(err, "failed to provision admin account")
	}

	s.logger.InfoContext(ctx, "provisioned admin account from configured credentials",
		slog.String("username", username),
	)

	return user, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
