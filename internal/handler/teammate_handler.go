package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	"github.com/vinnynacc/teammate-directory-api/internal/service"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
	"github.com/vinnynacc/teammate-directory-api/pkg/response"
)

// photoField is the multipart field carrying an uploaded teammate photo.
const photoField = "photo"

type teammateService interface {
	List(ctx context.Context) ([]models.Teammate, error)
	Get(ctx context.Context, slug string) (*models.Teammate, error)
	Create(ctx context.Context, input service.TeammateInput, storedPhoto string) (*models.Teammate, error)
	Update(ctx context.Context, slug string, input service.TeammateInput, storedPhoto string) (*models.Teammate, error)
	Delete(ctx context.Context, slug string) (*models.Teammate, error)
}

type exportService interface {
	Render(ctx context.Context, format string) (*service.ExportResult, error)
}

type uploadStore interface {
	SaveUpload(originalName string, r io.Reader) (string, error)
}

// TeammateHandler wires teammate services to HTTP routes.
type TeammateHandler struct {
	teammates teammateService
	exports   exportService
	uploads   uploadStore
}

// NewTeammateHandler constructs a new TeammateHandler.
func NewTeammateHandler(teammates teammateService, exports exportService, uploads uploadStore) *TeammateHandler {
	return &TeammateHandler{teammates: teammates, exports: exports, uploads: uploads}
}

// List godoc
// @Summary List teammates
// @Tags Teammates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teammates [get]
func (h *TeammateHandler) List(c *gin.Context) {
	records, err := h.teammates.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Get godoc
// @Summary Get teammate profile
// @Tags Teammates
// @Produce json
// @Param slug path string true "Teammate slug"
// @Success 200 {object} response.Envelope
// @Router /teammates/{slug} [get]
func (h *TeammateHandler) Get(c *gin.Context) {
	record, err := h.teammates.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Create godoc
// @Summary Create teammate
// @Tags Teammates
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /teammates [post]
func (h *TeammateHandler) Create(c *gin.Context) {
	input, storedPhoto, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.teammates.Create(c.Request.Context(), input, storedPhoto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Update godoc
// @Summary Update teammate
// @Tags Teammates
// @Accept json
// @Accept mpfd
// @Produce json
// @Param slug path string true "Teammate slug"
// @Success 200 {object} response.Envelope
// @Router /teammates/{slug} [put]
func (h *TeammateHandler) Update(c *gin.Context) {
	input, storedPhoto, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.teammates.Update(c.Request.Context(), c.Param("slug"), input, storedPhoto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete teammate
// @Tags Teammates
// @Produce json
// @Param slug path string true "Teammate slug"
// @Success 200 {object} response.Envelope
// @Router /teammates/{slug} [delete]
func (h *TeammateHandler) Delete(c *gin.Context) {
	removed, err := h.teammates.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, removed)
}

// Export godoc
// @Summary Export the roster
// @Tags Teammates
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/teammates [get]
func (h *TeammateHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", service.FormatCSV))
	result, err := h.exports.Render(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// bindInput decodes the payload from either a JSON body or form fields, and
// stores an uploaded photo when one was sent along.
func (h *TeammateHandler) bindInput(c *gin.Context) (service.TeammateInput, string, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return service.TeammateInput{}, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid multipart payload")
		}
		input := service.InputFromValues(url.Values(form.Value))

		storedPhoto := ""
		if files := form.File[photoField]; len(files) > 0 && h.uploads != nil {
			src, err := files[0].Open()
			if err != nil {
				return service.TeammateInput{}, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read uploaded photo")
			}
			defer src.Close() //nolint:errcheck
			storedPhoto, err = h.uploads.SaveUpload(files[0].Filename, src)
			if err != nil {
				return service.TeammateInput{}, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store uploaded photo")
			}
		}
		return input, storedPhoto, nil
	}

	if contentType == "application/x-www-form-urlencoded" {
		if err := c.Request.ParseForm(); err != nil {
			return service.TeammateInput{}, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid form payload")
		}
		return service.InputFromValues(c.Request.PostForm), "", nil
	}

	var input service.TeammateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return service.TeammateInput{}, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teammate payload")
	}
	return input, "", nil
}
