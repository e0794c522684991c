package contact

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apihttp "github.com/tharindu-dev/portfolio-backend/internal/api/http"
	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

type Handler struct {
	service *Service
	limiter *ipLimiter
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		// 5 submissions per hour per IP, small burst for retries.
		limiter: newIPLimiter(rate.Every(12*time.Minute), 3),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/contact", h.Submit)
	r.GET("/contact-submissions", h.ListSubmissions)
	r.PUT("/contact-submissions/:id/read", h.MarkAsRead)
	r.DELETE("/contact-submissions/:id", h.DeleteSubmission)
}

func (h *Handler) Submit(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"ok":    false,
			"error": "Too many submissions. Please try again later.",
		})
		return
	}

	var in validate.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "submission": sub})
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "submissions": subs})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	if err := h.service.MarkAsRead(c.Request.Context(), auth.FromContext(c), c.Param("id")); err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Contact submission marked as read"})
}

func (h *Handler) DeleteSubmission(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), auth.FromContext(c), c.Param("id")); err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Contact submission deleted successfully"})
}
