// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the domain.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
// It returns the repository as a domain.BlogRepository interface, adhering to dependency inversion.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new blog and writes the generated ID and timestamps back
// into the entity.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBlogCreationFailed.WrapMessage("unknown creator reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindAll retrieves every stored blog with its creator preloaded.
// Order is natural storage order; the API makes no ordering promise.
func (repo *blogRepository) FindAll(ctx context.Context) ([]entity.Blog, error) {
	var blogMs []model.BlogModel
	if err := repo.db.WithContext(ctx).
		Preload("Creator").
		Find(&blogMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]entity.Blog, 0, len(blogMs))
	for i := range blogMs {
		blogs = append(blogs, *toBlogDomain(&blogMs[i]))
	}

	return blogs, nil
}

// FindByID retrieves a single blog by its ID with the creator preloaded.
func (repo *blogRepository) FindByID(ctx context.Context, id uint) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&blogM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// UpdateBody replaces the body column of the blog with the given ID.
// The title column is intentionally not written.
func (repo *blogRepository) UpdateBody(ctx context.Context, id uint, body string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		Update("body", body)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete permanently removes the blog with the given ID. Blogs are deleted
// independently of their creator.
func (repo *blogRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
// The creator, when loaded, is mapped without its own blog list to keep the
// conversion acyclic.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	var creator *entity.User
	if data.Creator != nil {
		creator = &entity.User{
			ID:           data.Creator.ID,
			Name:         data.Creator.Name,
			Email:        data.Creator.Email,
			PasswordHash: data.Creator.PasswordHash,
			CreatedAt:    data.Creator.CreatedAt,
			UpdatedAt:    data.Creator.UpdatedAt,
		}
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		CreatorID: data.CreatorID,
		Creator:   creator,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel for persistence.
// Only scalar columns are written; the creator association is never persisted
// through a blog write.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		CreatorID: data.CreatorID,
	}
}
