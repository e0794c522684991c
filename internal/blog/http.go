package blog

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

// RegisterRoutes mounts the public read surface and the admin write
// surface under the given group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/blog-posts", h.ListPosts)
	r.GET("/blog-posts/:slug", h.GetPost)
	r.POST("/blog-posts", h.CreatePost)
	r.PUT("/blog-posts/:id", h.UpdatePost)
	r.DELETE("/blog-posts/:id", h.DeletePost)
}

func (h *Handler) ListPosts(c *gin.Context) {
	all := c.Query("all") == "true"

	posts, err := h.service.List(c.Request.Context(), all)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "posts": posts})
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "post": post})
}

func (h *Handler) CreatePost(c *gin.Context) {
	var in validate.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}

	post, err := h.service.Create(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "post": post})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var in validate.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apihttp.Error(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request body", err))
		return
	}
	in.ID = c.Param("id")

	post, err := h.service.Update(c.Request.Context(), auth.FromContext(c), in)
	if err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "post": post})
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), auth.FromContext(c), c.Param("id")); err != nil {
		apihttp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Blog post deleted successfully"})
}
