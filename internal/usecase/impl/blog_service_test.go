package impl

import (
	"context"
	"testing"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	mockRepo "scribe/internal/mocks/repository"
	"scribe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// blogServiceFixtures holds all test dependencies for blog service tests.
type blogServiceFixtures struct {
	service   usecase.BlogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewBlogService(txManager, newDiscardLogger())

	return blogServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// runWithBlogRepo wires the transaction manager mock so the callback sees the
// given blog repository, and propagates the callback's error as the
// transaction result.
func runWithBlogRepo(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, blogRepo *mockRepo.MockBlogRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().BlogRepo().Return(blogRepo)

			return fn(mockFactory)
		})
}

func TestBlogService_CreateBlog_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	input := &usecase.CreateBlogInput{
		Title: "First post",
		Body:  "Hello, world.",
	}

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Blog")).
		RunAndReturn(func(_ context.Context, blog *entity.Blog) error {
			blog.ID = 1

			return nil
		})
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	created, err := fx.service.CreateBlog(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "First post", created.Title)
	assert.Equal(t, "Hello, world.", created.Body)
	assert.Nil(t, created.CreatorID)
}

func TestBlogService_ListBlogs_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	stored := []entity.Blog{
		{ID: 1, Title: "First", Body: "a"},
		{ID: 2, Title: "Second", Body: "b", Creator: &entity.User{Name: "Ada", Email: "ada@example.com"}},
	}

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	blogs, err := fx.service.ListBlogs(ctx)

	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "First", blogs[0].Title)
	assert.Nil(t, blogs[0].Creator)
	require.NotNil(t, blogs[1].Creator)
	assert.Equal(t, "Ada", blogs[1].Creator.Name)
}

func TestBlogService_GetBlog_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	stored := &entity.Blog{ID: 7, Title: "Found", Body: "content"}

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().FindByID(ctx, uint(7)).Return(stored, nil)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	blog, err := fx.service.GetBlog(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "Found", blog.Title)
	assert.Equal(t, "content", blog.Body)
}

func TestBlogService_GetBlog_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrBlogNotFound)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	blog, err := fx.service.GetBlog(ctx, 42)

	require.Error(t, err)
	assert.Nil(t, blog)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Blog with the id 42 is not available", appErr.Message())
}

func TestBlogService_UpdateBlog_AppliesBodyOnly(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	input := &usecase.UpdateBlogInput{
		Title: "A new title that must be ignored",
		Body:  "replacement body",
	}

	blogRepo := mockRepo.NewMockBlogRepository(t)
	// Only the body reaches the repository; the title is dropped on the floor.
	blogRepo.EXPECT().UpdateBody(ctx, uint(3), "replacement body").Return(nil)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	err := fx.service.UpdateBlog(ctx, 3, input)

	require.NoError(t, err)
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	input := &usecase.UpdateBlogInput{Body: "replacement body"}

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().UpdateBody(ctx, uint(42), "replacement body").Return(repository.ErrBlogNotFound)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	err := fx.service.UpdateBlog(ctx, 42, input)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Blog with the id 42 is not available", appErr.Message())
}

func TestBlogService_DeleteBlog_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().Delete(ctx, uint(5)).Return(nil)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	err := fx.service.DeleteBlog(ctx, 5)

	require.NoError(t, err)
}

func TestBlogService_DeleteBlog_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	blogRepo := mockRepo.NewMockBlogRepository(t)
	blogRepo.EXPECT().Delete(ctx, uint(42)).Return(repository.ErrBlogNotFound)
	runWithBlogRepo(t, fx.txManager, ctx, blogRepo)

	err := fx.service.DeleteBlog(ctx, 42)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
}
