package impl

import (
	"context"
	"encoding/json"
	"testing"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	mockRepo "scribe/internal/mocks/repository"
	mockService "scribe/internal/mocks/service"
	"scribe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewUserService(txManager, hasher, newDiscardLogger())

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func runWithUserRepo(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().UserRepo().Return(userRepo)

			return fn(mockFactory)
		})
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("$2a$12$digest", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			// The repository sees the digest, never the plaintext.
			assert.Equal(t, "$2a$12$digest", user.PasswordHash)
			user.ID = 1

			return nil
		})
	runWithUserRepo(t, fx.txManager, ctx, userRepo)

	out, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "ada@example.com", out.Email)
	assert.Empty(t, out.Blogs)
}

func TestUserService_RegisterUser_OutputCarriesNoPasswordMaterial(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("$2a$12$digest", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	runWithUserRepo(t, fx.txManager, ctx, userRepo)

	out, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)

	// Serialize the output shape the way the delivery layer would and make
	// sure neither the plaintext nor the digest appears anywhere.
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "plaintext-secret")
	assert.NotContains(t, string(raw), "$2a$12$digest")
	assert.NotContains(t, string(raw), "password")
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("", errors.New("bcrypt failure"))

	out, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PASSWORD_HASH_FAILED", appErr.ErrorCode())
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           3,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$digest",
		Blogs: []entity.Blog{
			{ID: 1, Title: "First", Body: "a"},
		},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, uint(3)).Return(stored, nil)
	runWithUserRepo(t, fx.txManager, ctx, userRepo)

	out, err := fx.service.GetUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Name)
	require.Len(t, out.Blogs, 1)
	assert.Equal(t, "First", out.Blogs[0].Title)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrUserNotFound)
	runWithUserRepo(t, fx.txManager, ctx, userRepo)

	out, err := fx.service.GetUser(ctx, 42)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "User with the id 42 is not available", appErr.Message())
}
