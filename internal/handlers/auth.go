package handlers

import (
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/middleware"
	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and the session lifecycle
type AuthHandler struct {
	authService services.AuthService
	cookies     *middleware.CookieCodec
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, cookies *middleware.CookieCodec) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// RegisterAuthRoutes registers authentication-related routes. The Firebase
// login route is only mounted when a token verifier is configured.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, firebaseEnabled bool) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout)
	g.GET("/session", h.Session)
	if firebaseEnabled {
		g.POST("/firebase-login", h.FirebaseLogin)
	}
}

// Register creates a local account
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Registration successful! You can now log in."})
}

// Login checks the credentials and opens a session
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return h.startSession(c, session)
}

// FirebaseLogin opens a session for the account linked to a Firebase ID token
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.authService.LoginWithFirebase(c.Request().Context(), req.IDToken)
	if err != nil {
		return toHTTPError(err)
	}
	return h.startSession(c, session)
}

func (h *AuthHandler) startSession(c echo.Context, session *models.Session) error {
	cookie, err := h.cookies.Encode(session.ID, session.ExpiresAt)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Login successful",
		"username":   session.Username,
		"isLoggedIn": session.IsLoggedIn,
	})
}

// Logout destroys the current session, if any
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error during logout").SetInternal(err)
	}
	c.SetCookie(h.cookies.Clear())

	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful", "isLoggedIn": false})
}

// Session reports whether the caller is logged in
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.authService.Status(c.Request().Context(), middleware.SessionID(c)))
}
