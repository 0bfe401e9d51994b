package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/mocks"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mocks.UserRepository
	hasher       *mocks.PasswordHasher
	tokenService *mocks.TokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mocks.UserRepository{}
	hasher := &mocks.PasswordHasher{}
	tokenService := &mocks.TokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret123").Return("$2a$10$hash", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.On("IssueAccess", int64(42), "new@example.com", "2h").Return("access-token", nil)
	fx.tokenService.On("IssueRefresh", int64(42), "new@example.com").Return("refresh-token", nil)

	out, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:           "new@example.com",
		Password:        "secret123",
		Name:            "New User",
		SessionDuration: "2h",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, int64(42), out.User.ID)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	tests := []struct {
		name  string
		input *usecase.SignupInput
	}{
		{name: "missing email", input: &usecase.SignupInput{Password: "secret123"}},
		{name: "missing password", input: &usecase.SignupInput{Email: "a@b.c"}},
		{name: "missing both", input: &usecase.SignupInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fx.service.Signup(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrEmailPasswordRequired)
		})
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret123").Return("$2a$10$hash", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrEmailTaken, "dup@example.com"))

	out, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "dup@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "user@example.com", PasswordHash: "$2a$10$hash"}
	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "secret123", "$2a$10$hash").Return(true)
	fx.tokenService.On("IssueAccess", int64(7), "user@example.com", "").Return("access-token", nil)
	fx.tokenService.On("IssueRefresh", int64(7), "user@example.com").Return("refresh-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIdentical(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	user := &entity.User{ID: 7, Email: "user@example.com", PasswordHash: "$2a$10$hash"}
	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	// Both failure modes must be indistinguishable on the wire.
	assert.Equal(t, unknownErr, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	claims := &service.Claims{UserID: 7, Email: "user@example.com"}
	fx.tokenService.On("VerifyRefresh", "refresh-token").Return(claims, nil)
	// Refresh always mints the default one-hour access token.
	fx.tokenService.On("IssueAccess", int64(7), "user@example.com", "").Return("new-access", nil)

	out, err := fx.service.Refresh(context.Background(), "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.On("VerifyRefresh", "tampered").Return(nil, errors.New("invalid or expired token"))

	out, err := fx.service.Refresh(context.Background(), "tampered")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}
