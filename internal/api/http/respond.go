package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
)

// Error writes the uniform REST error shape. Internal causes are
// logged, never echoed.
func Error(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.Internal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	body := gin.H{
		"ok":    false,
		"error": appErr.Message,
		"code":  appErr.Kind.String(),
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(appErr.Kind.HTTPStatus(), body)
}
