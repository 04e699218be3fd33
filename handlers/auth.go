package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"RealtySiteAPI/auth"
	"RealtySiteAPI/models"
	"RealtySiteAPI/session"
	"RealtySiteAPI/utils"
)

type AuthController struct {
	auth     *auth.Service
	sessions session.Factory
}

func NewAuthController(authService *auth.Service, sessions session.Factory) *AuthController {
	return &AuthController{
		auth:     authService,
		sessions: sessions,
	}
}

func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := ac.auth.Register(c.Request().Context(), auth.RegisterInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         req.Password,
		RegistrationType: models.RegistrationEmail,
	})
	if err != nil {
		return authErrorResponse(c, err)
	}

	return ac.respondWithSession(c, http.StatusCreated, *user)
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := ac.auth.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		return authErrorResponse(c, err)
	}

	return ac.respondWithSession(c, http.StatusOK, *user)
}

func (ac *AuthController) OAuthLogin(c echo.Context) error {
	var req models.OAuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := ac.auth.OAuthLogin(c.Request().Context(), auth.OAuthInput{
		FullName: req.FullName,
		Email:    req.Email,
		Provider: req.Provider,
		OAuthID:  req.OAuthID,
	})
	if err != nil {
		return authErrorResponse(c, err)
	}

	return ac.respondWithSession(c, http.StatusOK, *user)
}

func (ac *AuthController) Me(c echo.Context) error {
	userID := c.Get("user_id").(string)

	user, err := ac.sessions(userID).Get(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read session"})
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No active session"})
	}
	return c.JSON(http.StatusOK, user)
}

func (ac *AuthController) Logout(c echo.Context) error {
	userID := c.Get("user_id").(string)

	if err := ac.sessions(userID).Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear session"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// respondWithSession fills the session slot, signs a token naming it,
// and returns the public projection.
func (ac *AuthController) respondWithSession(c echo.Context, status int, user models.SessionUser) error {
	if err := ac.sessions(user.ID).Save(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save session"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(status, models.AuthResponse{Token: token, User: user})
}

func authErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, map[string]string{"error": "User with this email already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	case errors.Is(err, auth.ErrAccountNotActive):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Account is inactive or suspended"})
	case errors.Is(err, auth.ErrOperationFailed):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Service temporarily unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Unexpected error"})
	}
}
