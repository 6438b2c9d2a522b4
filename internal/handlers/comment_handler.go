package handlers

import (
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/presenter"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	postService services.PostService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postService services.PostService) *CommentHandler {
	return &CommentHandler{postService: postService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.POST("/posts/:id/comments", h.CreateComment, requireSession)
	g.PUT("/posts/:id/comments/update/:commentId", h.UpdateComment, requireSession)
	g.DELETE("/posts/:id/comments/delete/:commentId", h.DeleteComment, requireSession)
}

// CreateComment appends a comment to a post's thread
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	comment, err := h.postService.AddComment(c.Request().Context(), c.Param("id"), req.Username, req.Content)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment added successfully",
		"comment": presenter.FormatComment(*comment),
	})
}

// UpdateComment replaces the content of an existing comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	var req models.UpdateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	comment, err := h.postService.UpdateComment(c.Request().Context(), c.Param("id"), c.Param("commentId"), req.Username, req.Content)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Comment updated successfully",
		"comment": presenter.FormatComment(*comment),
	})
}

// DeleteComment removes a comment from a post's thread
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	var req models.DeleteCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.postService.DeleteComment(c.Request().Context(), c.Param("id"), c.Param("commentId"), req.Username); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}
