// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scribe/internal/domain/entity"
)

// --- Input DTOs ---
// Input shapes are bound from request bodies and validated at the delivery
// layer. They are deliberately distinct from both the domain entities and the
// output shapes.

// CreateBlogInput defines the data required to create a new blog post.
type CreateBlogInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// UpdateBlogInput defines the data accepted by the blog update endpoint.
// Title is accepted for wire compatibility but never applied; only Body is
// written. Callers relying on title updates must recreate the post.
type UpdateBlogInput struct {
	Title string `json:"title"`
	Body  string `json:"body" validate:"required"`
}

// --- Output DTOs ---
// Output shapes control exactly what is serialized back. A user's password
// hash has no field here and therefore can never leak.

// CreatedBlog is returned from the create endpoint: the stored row including
// its newly assigned ID.
type CreatedBlog struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatorID *uint  `json:"creator_id"`
}

// ShowBlog is the read shape for a blog post, embedding its creator.
type ShowBlog struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Creator *ShowUser `json:"creator"`
}

// ShowUser is the read shape for a user, embedding the posts they own.
type ShowUser struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Blogs []ShowBlog `json:"blogs"`
}

// NewCreatedBlog maps a freshly persisted blog entity to its response shape.
func NewCreatedBlog(blog *entity.Blog) *CreatedBlog {
	return &CreatedBlog{
		ID:        blog.ID,
		Title:     blog.Title,
		Body:      blog.Body,
		CreatorID: blog.CreatorID,
	}
}

// NewShowBlog maps a blog entity to its read shape. The embedded creator is
// rendered without their blog list, keeping the shape finite.
func NewShowBlog(blog *entity.Blog) *ShowBlog {
	out := &ShowBlog{
		Title: blog.Title,
		Body:  blog.Body,
	}
	if blog.Creator != nil {
		out.Creator = &ShowUser{
			Name:  blog.Creator.Name,
			Email: blog.Creator.Email,
			Blogs: []ShowBlog{},
		}
	}

	return out
}

// NewShowUser maps a user entity to its read shape. Owned blogs are rendered
// without their creator back-reference.
func NewShowUser(user *entity.User) *ShowUser {
	blogs := make([]ShowBlog, 0, len(user.Blogs))
	for i := range user.Blogs {
		blogs = append(blogs, ShowBlog{
			Title: user.Blogs[i].Title,
			Body:  user.Blogs[i].Body,
		})
	}

	return &ShowUser{
		Name:  user.Name,
		Email: user.Email,
		Blogs: blogs,
	}
}

// BlogUsecase defines the interface for blog-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type BlogUsecase interface {
	CreateBlog(ctx context.Context, input *CreateBlogInput) (*CreatedBlog, error)
	ListBlogs(ctx context.Context) ([]ShowBlog, error)
	GetBlog(ctx context.Context, id uint) (*ShowBlog, error)
	UpdateBlog(ctx context.Context, id uint, input *UpdateBlogInput) error
	DeleteBlog(ctx context.Context, id uint) error
}
