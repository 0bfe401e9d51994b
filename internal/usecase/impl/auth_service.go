// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and immediately establishes a session.
// Uniqueness is delegated to the store's constraint; there is no prior
// existence check, so two concurrent signups cannot both win.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrEmailPasswordRequired
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := buildNewUser(input.Email, hash, input.Name, input.Mobile)
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrDatabase.WrapMessage("failed to create user")
	}

	output, err := srv.issueSession(user.ID, user.Email, input.SessionDuration)
	if err != nil {
		return nil, err
	}
	output.User = user

	srv.log(ctx).Debug("Signup completed", slog.Int64("userID", user.ID))

	return output, nil
}

// Login verifies credentials and establishes a session. Unknown email and
// wrong password take the same exit path so the responses are identical.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrEmailPasswordRequired
	}

	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrDatabase.WrapMessage("failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issueSession(user.ID, user.Email, input.SessionDuration)
	if err != nil {
		return nil, err
	}
	output.User = user

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return output, nil
}

// Refresh exchanges a valid refresh token for a fresh one-hour access token.
// The refresh token itself is not rotated; it stays valid until its own expiry.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	accessToken, err := srv.tokenService.IssueAccess(claims.UserID, claims.Email, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Int64("userID", claims.UserID))

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

func (srv *authService) issueSession(userID int64, email, sessionDuration string) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.IssueAccess(userID, email, sessionDuration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(userID, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
