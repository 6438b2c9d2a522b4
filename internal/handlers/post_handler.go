package handlers

import (
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/middleware"
	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/presenter"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post routes. Reads are public; writes run
// behind requireSession.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.GET("/post", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/user-posts/:username", h.GetUserPosts)
	g.POST("/add-post", h.CreatePost, requireSession)
	g.DELETE("/posts/:id", h.DeletePost, requireSession)
}

// CreatePost creates a post tied to a reference country
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), middleware.Username(c), req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "The destination added successfully",
		"post":    presenter.FormatPost(*post),
	})
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, presenter.FormatPost(*post))
}

// GetPosts lists every post with its country
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, presenter.FormatPosts(posts))
}

func (h *PostHandler) GetUserPosts(c echo.Context) error {
	posts, err := h.postService.ListUserPosts(c.Request().Context(), c.Param("username"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, presenter.FormatUserPosts(posts))
}

// DeletePost deletes a post and its comment thread
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postService.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}
