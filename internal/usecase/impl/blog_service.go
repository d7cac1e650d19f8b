// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/usecase"

	"github.com/pkg/errors"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewBlogService is the constructor for blogService. It receives all dependencies as interfaces.
func NewBlogService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.BlogUsecase {
	return &blogService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateBlog inserts a new post and returns the stored row with its assigned ID.
func (srv *blogService) CreateBlog(ctx context.Context, input *usecase.CreateBlogInput) (*usecase.CreatedBlog, error) {
	srv.logger.Info("Creating blog", "title", input.Title)

	newBlog := &entity.Blog{
		Title: input.Title,
		Body:  input.Body,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if err := blogRepo.Create(ctx, newBlog); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	return usecase.NewCreatedBlog(newBlog), nil
}

// ListBlogs returns every stored post with its creator embedded.
func (srv *blogService) ListBlogs(ctx context.Context) ([]usecase.ShowBlog, error) {
	srv.logger.Debug("Listing blogs")

	var blogs []entity.Blog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		found, err := blogRepo.FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list blogs")
		}
		blogs = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	out := make([]usecase.ShowBlog, 0, len(blogs))
	for i := range blogs {
		out = append(out, *usecase.NewShowBlog(&blogs[i]))
	}

	return out, nil
}

// GetBlog returns the post with the given ID or a not-found error carrying
// the public message wording.
func (srv *blogService) GetBlog(ctx context.Context, id uint) (*usecase.ShowBlog, error) {
	srv.logger.Debug("Getting blog", "blogID", id)

	var blog *entity.Blog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		found, err := blogRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.NewBlogNotFoundError(id)
			}

			return errors.Wrap(err, "failed to find blog")
		}
		blog = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return usecase.NewShowBlog(blog), nil
}

// UpdateBlog replaces the body of the post with the given ID. The title in
// the input is ignored; the change is committed atomically.
func (srv *blogService) UpdateBlog(ctx context.Context, id uint, input *usecase.UpdateBlogInput) error {
	srv.logger.Info("Updating blog", "blogID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if err := blogRepo.UpdateBody(ctx, id, input.Body); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.NewBlogNotFoundError(id)
			}

			return errors.Wrap(err, "failed to update blog")
		}

		return nil
	})

	return err
}

// DeleteBlog permanently removes the post with the given ID.
func (srv *blogService) DeleteBlog(ctx context.Context, id uint) error {
	srv.logger.Info("Deleting blog", "blogID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if err := blogRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.NewBlogNotFoundError(id)
			}

			return errors.Wrap(err, "failed to delete blog")
		}

		return nil
	})

	return err
}
