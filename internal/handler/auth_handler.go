package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
	"github.com/vinnynacc/teammate-directory-api/pkg/response"
)

type authService interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler exposes admin login over HTTP.
type AuthHandler struct {
	auth authService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth authService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Exchange the admin credential for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Admin credential"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	session, err := h.auth.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}
