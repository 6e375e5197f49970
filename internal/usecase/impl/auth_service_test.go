package impl

import (
	"context"
	"strings"
	"testing"

	"projectdesk/internal/domain/entity"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/repository"
	"projectdesk/internal/domain/service"
	"projectdesk/internal/infra/auth"
	mockRepo "projectdesk/internal/mocks/repository"
	mockSvc "projectdesk/internal/mocks/service"
	"projectdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$stored",
		Name:         "Ada",
		LastName:     "Lovelace",
	}
}

func TestAuthService_ValidateCredentials_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("correct-horse", user.PasswordHash).Return(true)

	got, err := fx.service.ValidateCredentials(ctx, user.Email, "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_ValidateCredentials_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(timingPassword).Return("$2a$10$timing", nil).Once()
	fx.hasher.EXPECT().Check("wrong", "$2a$10$timing").Return(false)

	_, wrongPasswordErr := fx.service.ValidateCredentials(ctx, user.Email, "wrong")
	_, unknownEmailErr := fx.service.ValidateCredentials(ctx, "ghost@example.com", "wrong")

	require.Error(t, wrongPasswordErr)
	require.Error(t, unknownEmailErr)
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func TestAuthService_ValidateCredentials_TimingHashComputedOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrUserNotFound).Times(3)
	fx.hasher.EXPECT().Hash(timingPassword).Return("$2a$10$timing", nil).Once()
	fx.hasher.EXPECT().Check("pw", "$2a$10$timing").Return(false).Times(3)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := fx.service.ValidateCredentials(ctx, email, "pw")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_ValidateCredentials_RepositoryError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, dbErr)

	_, err := fx.service.ValidateCredentials(ctx, "ada@example.com", "pw")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_IssueSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("*service.Claims")).
		Run(func(claims *service.Claims) {
			assert.Equal(t, user.ID.String(), claims.Subject)
			assert.Equal(t, user.Email, claims.Email)
		}).
		Return("signed.jwt.token", nil)

	session, err := fx.service.IssueSession(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", session.AccessToken)
}

func TestAuthService_IssueSession_SignError(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Sign(mock.Anything).Return("", errors.New("boom"))

	session, err := fx.service.IssueSession(context.Background(), newTestUser())

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "failed to sign access token")
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("pw", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Sign(mock.Anything).Return("token", nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "token", session.AccessToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("bad", user.PasswordHash).Return(false)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "bad"})

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "grace@example.com",
		Password: "Password123!",
		Name:     "Grace",
		LastName: "Hopper",
	}
	newID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = newID
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, input.Name, user.Name)
	assert.Equal(t, input.LastName, user.LastName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	conflict := domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(conflict)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "dup@example.com", Password: "pw"})

	assert.Nil(t, user)
	assert.Equal(t, conflict, err)
}

func TestAuthService_Register_HashError(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("bcrypt failure"))

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "x@example.com", Password: "pw"})

	assert.Nil(t, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestAuthService_Register_PasswordRejectedByHasher(t *testing.T) {
	fx := createTestAuthService(t)
	tooLong := domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")

	fx.hasher.EXPECT().Hash("pw").Return("", errors.WithStack(tooLong))

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "x@example.com", Password: "pw"})

	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
}

func TestAuthService_Register_OverlongPasswordWithBcrypt(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "long@example.com",
		Password: strings.Repeat("x", 73),
		Name:     "Long",
		LastName: "Password",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_GetProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
