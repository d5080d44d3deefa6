package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techstore/storefront-api/internal/api/metrics"
	"github.com/techstore/storefront-api/internal/core/domain"
	"github.com/techstore/storefront-api/internal/core/ports"
)

// CookieOptions controls how the session cookie is issued.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieOptions
}

func NewAuthHandler(authService ports.AuthService, cookie CookieOptions) *AuthHandler {
	if cookie.TTL <= 0 {
		cookie.TTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    identityResponse `json:"user"`
}

// Login exchanges email/password for a session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// The failure label tracks rejected credentials; internal faults
		// are visible through the request metrics and error log instead.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrAccountInactive) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, int(h.cookie.TTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		User: identityResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry (stateless model, no denylist).
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the live identity behind the verified token. Unlike every other
// guarded route it re-reads the store, so deactivating an account locks it
// out before the token expires.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrAccountInactive) {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
		}
		return err
	}

	return c.JSON(http.StatusOK, identityResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Status: user.Status,
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookie.Secure,
	}
}
