package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/validator"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBlogUsecase implements usecase.BlogUsecase with per-test function fields.
type stubBlogUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateBlogInput) (*usecase.CreatedBlog, error)
	listFn   func(ctx context.Context) ([]usecase.ShowBlog, error)
	getFn    func(ctx context.Context, id uint) (*usecase.ShowBlog, error)
	updateFn func(ctx context.Context, id uint, input *usecase.UpdateBlogInput) error
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubBlogUsecase) CreateBlog(ctx context.Context, input *usecase.CreateBlogInput) (*usecase.CreatedBlog, error) {
	return s.createFn(ctx, input)
}

func (s *stubBlogUsecase) ListBlogs(ctx context.Context) ([]usecase.ShowBlog, error) {
	return s.listFn(ctx)
}

func (s *stubBlogUsecase) GetBlog(ctx context.Context, id uint) (*usecase.ShowBlog, error) {
	return s.getFn(ctx, id)
}

func (s *stubBlogUsecase) UpdateBlog(ctx context.Context, id uint, input *usecase.UpdateBlogInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubBlogUsecase) DeleteBlog(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// stubUserUsecase implements usecase.UserUsecase with per-test function fields.
type stubUserUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.ShowUser, error)
	getFn      func(ctx context.Context, id uint) (*usecase.ShowUser, error)
}

func (s *stubUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.ShowUser, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserUsecase) GetUser(ctx context.Context, id uint) (*usecase.ShowUser, error) {
	return s.getFn(ctx, id)
}

// newTestServer builds an Echo instance with the production validator and
// error handler installed, so handler tests exercise the same status and
// envelope mapping as the real server.
func newTestServer(blogUC usecase.BlogUsecase, userUC usecase.UserUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	blogHandler := NewBlogHandler(blogUC, logger)
	userHandler := NewUserHandler(userUC, logger)

	e.POST("/blog", blogHandler.Create)
	e.GET("/blog", blogHandler.List)
	e.GET("/blog/:id", blogHandler.Get)
	e.PUT("/blog/:id", blogHandler.Update)
	e.DELETE("/blog/:id", blogHandler.Delete)
	e.POST("/user", userHandler.Register)
	e.GET("/user/:id", userHandler.Get)

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestBlogHandler_Create(t *testing.T) {
	blogUC := &stubBlogUsecase{
		createFn: func(_ context.Context, input *usecase.CreateBlogInput) (*usecase.CreatedBlog, error) {
			return &usecase.CreatedBlog{ID: 1, Title: input.Title, Body: input.Body}, nil
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodPost, "/blog", `{"title":"First post","body":"Hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), "First post")
}

func TestBlogHandler_Create_MissingFields(t *testing.T) {
	e := newTestServer(&stubBlogUsecase{}, &stubUserUsecase{})

	// Body is required; the validator rejects before the usecase is reached.
	rec := doJSON(e, http.MethodPost, "/blog", `{"title":"only a title"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestBlogHandler_List(t *testing.T) {
	blogUC := &stubBlogUsecase{
		listFn: func(context.Context) ([]usecase.ShowBlog, error) {
			return []usecase.ShowBlog{
				{Title: "First", Body: "a"},
				{Title: "Second", Body: "b", Creator: &usecase.ShowUser{Name: "Ada", Email: "ada@example.com", Blogs: []usecase.ShowBlog{}}},
			}, nil
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodGet, "/blog", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "Ada")
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	blogUC := &stubBlogUsecase{
		getFn: func(_ context.Context, id uint) (*usecase.ShowBlog, error) {
			return nil, domainerrors.NewBlogNotFoundError(id)
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodGet, "/blog/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog with the id 42 is not available")
	assert.Contains(t, rec.Body.String(), "BLOG_NOT_FOUND")
}

func TestBlogHandler_Get_InvalidID(t *testing.T) {
	e := newTestServer(&stubBlogUsecase{}, &stubUserUsecase{})

	rec := doJSON(e, http.MethodGet, "/blog/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestBlogHandler_Update(t *testing.T) {
	var gotID uint
	var gotBody string
	blogUC := &stubBlogUsecase{
		updateFn: func(_ context.Context, id uint, input *usecase.UpdateBlogInput) error {
			gotID = id
			gotBody = input.Body

			return nil
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodPut, "/blog/3", `{"title":"ignored","body":"new body"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, uint(3), gotID)
	assert.Equal(t, "new body", gotBody)
}

func TestBlogHandler_Update_NotFound(t *testing.T) {
	blogUC := &stubBlogUsecase{
		updateFn: func(_ context.Context, id uint, _ *usecase.UpdateBlogInput) error {
			return domainerrors.NewBlogNotFoundError(id)
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodPut, "/blog/42", `{"body":"new body"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog with the id 42 is not available")
}

func TestBlogHandler_Delete(t *testing.T) {
	blogUC := &stubBlogUsecase{
		deleteFn: func(context.Context, uint) error { return nil },
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodDelete, "/blog/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBlogHandler_Delete_NotFound(t *testing.T) {
	blogUC := &stubBlogUsecase{
		deleteFn: func(_ context.Context, id uint) error {
			return domainerrors.NewBlogNotFoundError(id)
		},
	}
	e := newTestServer(blogUC, &stubUserUsecase{})

	rec := doJSON(e, http.MethodDelete, "/blog/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_Register(t *testing.T) {
	userUC := &stubUserUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterUserInput) (*usecase.ShowUser, error) {
			return &usecase.ShowUser{Name: input.Name, Email: input.Email, Blogs: []usecase.ShowBlog{}}, nil
		},
	}
	e := newTestServer(&stubBlogUsecase{}, userUC)

	rec := doJSON(e, http.MethodPost, "/user", `{"name":"Ada","email":"ada@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")
	// No password material in the response, in any spelling.
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestServer(&stubBlogUsecase{}, &stubUserUsecase{})

	rec := doJSON(e, http.MethodPost, "/user", `{"name":"Ada"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	userUC := &stubUserUsecase{
		getFn: func(_ context.Context, id uint) (*usecase.ShowUser, error) {
			return nil, domainerrors.NewUserNotFoundError(id)
		},
	}
	e := newTestServer(&stubBlogUsecase{}, userUC)

	rec := doJSON(e, http.MethodGet, "/user/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with the id 42 is not available")
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}
