package casestudy

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
	r.GET("/case-studies", h.ListCaseStudies)
	r.GET("/case-studies/:slug", h.GetCaseStudy)
	r.POST("/case-studies", h.CreateCaseStudy)
	r.PUT("/case-studies/:id", h.UpdateCaseStudy)
	r.DELETE("/case-studies/:id", h.DeleteCaseStudy)
	r.POST("/case-study-sections", h.AddSection)
	r.POST("/case-study-metrics", h.AddMetric)
}

func (h *Handler) ListCaseStudies(c *gin.Context) {
	all := c.Query("all") == "true"

	studies, err := h.service.List(c.Request.Context(), all)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "caseStudies": studies})
}

func (h *Handler) GetCaseStudy(c *gin.Context) {
	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "caseStudy": detail})
}

func (h *Handler) CreateCaseStudy(c *gin.Context) {
	var in validate.CaseStudyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	cs, err := h.service.Create(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "caseStudy": cs})
}

func (h *Handler) UpdateCaseStudy(c *gin.Context) {
	var in validate.CaseStudyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}
	in.ID = c.Param("id")

	cs, err := h.service.Update(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "caseStudy": cs})
}

func (h *Handler) DeleteCaseStudy(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), auth.FromContext(c), c.Param("id")); err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Case study deleted successfully"})
}

func (h *Handler) AddSection(c *gin.Context) {
	var in validate.SectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	section, err := h.service.AddSection(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "section": section})
}

func (h *Handler) AddMetric(c *gin.Context) {
	var in validate.MetricInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	metric, err := h.service.AddMetric(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "metric": metric})
}
