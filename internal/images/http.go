package images

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
	r.POST("/images/process", h.ProcessImage)
	r.POST("/images/auto-process", h.AutoProcess)
}

func (h *Handler) ProcessImage(c *gin.Context) {
	var in validate.ProcessImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	result, err := h.service.Process(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

func (h *Handler) AutoProcess(c *gin.Context) {
	var in validate.AutoProcessInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	result, err := h.service.AutoProcess(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}
