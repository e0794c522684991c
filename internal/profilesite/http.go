package profilesite

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
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.POST("/profile/work-experience", h.AddWorkExperience)
	r.POST("/profile/education", h.AddEducation)
	r.POST("/profile/skills", h.AddSkill)
}

func (h *Handler) GetProfile(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context())
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": view})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var in validate.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile})
}

func (h *Handler) AddWorkExperience(c *gin.Context) {
	var in validate.WorkExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	exp, err := h.service.AddWorkExperience(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "workExperience": exp})
}

func (h *Handler) AddEducation(c *gin.Context) {
	var in validate.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	edu, err := h.service.AddEducation(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "education": edu})
}

func (h *Handler) AddSkill(c *gin.Context) {
	var in validate.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	skill, err := h.service.AddSkill(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "skill": skill})
}
