package files

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
	"EduAgent/pkg/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UploadPDF(c echo.Context) error {
	return h.upload(c, TypePDF)
}

func (h *Handler) UploadVideo(c echo.Context) error {
	return h.upload(c, TypeVideo)
}

func (h *Handler) upload(c echo.Context, fileType Type) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "missing token"))
	}
	orgID, err := primitive.ObjectIDFromHex(principal.ID)
	if err != nil {
		return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "invalid token"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.JSON(c, apperr.Validation("file is required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return apperr.JSON(c, apperr.Validation("unreadable file"))
	}
	defer src.Close()

	record, err := h.service.Upload(c.Request().Context(), orgID, principal.Name, fileType, Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Reader:      src,
		DisplayName: c.FormValue("display_name"),
		Description: c.FormValue("description"),
		Tags:        c.FormValue("tags"),
	})
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, record.Response())
}

// ListByOrganization only serves an organization its own files.
func (h *Handler) ListByOrganization(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	orgID := c.Param("org_id")
	if principal == nil || principal.ID != orgID {
		return apperr.JSON(c, apperr.Forbidden("not authorized to access files from other organizations"))
	}

	responses, err := h.service.ListByOrganization(c.Request().Context(), orgID)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *Handler) GetByID(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "missing token"))
	}

	record, err := h.service.Get(c.Request().Context(), c.Param("file_id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	if record.OrganizationID.Hex() != principal.ID {
		return apperr.JSON(c, apperr.Forbidden("not authorized to access this file"))
	}
	return c.JSON(http.StatusOK, record.Response())
}
