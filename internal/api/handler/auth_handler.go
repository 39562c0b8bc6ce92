package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/api/metrics"
	"github.com/bestcars/dealership-gateway/internal/api/middleware"
	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// AuthHandler handles login, logout and registration.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns the session envelope.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  authFailure
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailure{Error: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, authFailure{UserName: req.UserName, Error: "Invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{
		UserName: user.Username,
		Status:   "Authenticated",
		UserType: user.Role,
		DealerID: user.DealerID,
		Token:    token,
	})
}

// Logout revokes the presented session token. Always returns 200 with an
// empty userName, whatever the token looked like.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c.Request())
	_ = h.authService.Logout(c.Request().Context(), token)
	return c.JSON(http.StatusOK, map[string]string{"userName": ""})
}

// Register creates an account and establishes a session identical in shape
// to login's. A taken username yields the fixed "Already Registered" body.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  authFailure
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailure{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailure{UserName: req.UserName, Error: err.Error()})
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.UserName,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.UserType,
		DealerID:  req.DealerID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return c.JSON(http.StatusOK, authFailure{UserName: req.UserName, Error: "Already Registered"})
		}
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		UserName: user.Username,
		Status:   "Authenticated",
		UserType: user.Role,
		DealerID: user.DealerID,
		Token:    token,
	})
}
