package handlers

import (
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postService services.PostService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postService services.PostService) *LikeHandler {
	return &LikeHandler{postService: postService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.POST("/posts/:id/like", h.ToggleLike, requireSession)
}

// ToggleLike likes the post for the user, or unlikes it when already liked
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	var req models.LikeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	likes, err := h.postService.ToggleLike(c.Request().Context(), c.Param("id"), req.Username)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Like updated", "likes": likes})
}
