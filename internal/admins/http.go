package admins

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/tharindu-dev/portfolio-backend/internal/api/http"
	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/admins", h.CreateAdmin)
	r.PUT("/admins/:uid/role", h.UpdateRole)
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var in validate.CreateAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	account, err := h.service.CreateAdmin(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "admin": account})
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var in validate.UpdateRoleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}
	in.UID = c.Param("uid")

	if err := h.service.UpdateRole(c.Request.Context(), auth.FromContext(c), in); err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Admin role updated successfully"})
}
