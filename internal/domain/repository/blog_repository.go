// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"
)

// ErrBlogNotFound is a domain-specific error returned when a blog is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the standard operations for blog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type BlogRepository interface {
	// Create persists a new blog entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, blog *entity.Blog) error

	// FindAll retrieves every stored blog in natural storage order, with creators attached.
	FindAll(ctx context.Context) ([]entity.Blog, error)

	// FindByID retrieves a single blog by its ID, with the creator attached.
	FindByID(ctx context.Context, id uint) (*entity.Blog, error)

	// UpdateBody replaces the body column of the blog with the given ID.
	// The title is deliberately left untouched.
	UpdateBody(ctx context.Context, id uint, body string) error

	// Delete permanently removes the blog with the given ID.
	Delete(ctx context.Context, id uint) error
}
