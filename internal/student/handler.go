package student

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"EduAgent/internal/apperr"
	"EduAgent/internal/auth"
	"EduAgent/pkg/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.JSON(c, apperr.Validation("invalid request body"))
	}

	student, err := h.service.Signup(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, student.Profile())
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.JSON(c, apperr.Validation("invalid request body"))
	}

	token, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, auth.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "missing token"))
	}

	student, err := h.service.Get(c.Request().Context(), principal.ID)
	if err != nil {
		return apperr.JSON(c, err)
	}
	if student == nil {
		return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "unknown account"))
	}
	return c.JSON(http.StatusOK, student.Profile())
}

// ListByOrganization is open to any authenticated principal; see the
// design notes on the permissive listing behavior.
func (h *Handler) ListByOrganization(c echo.Context) error {
	profiles, err := h.service.ListByOrganization(c.Request().Context(), c.Param("org_id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}
