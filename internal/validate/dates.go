package validate

import (
	"time"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts the publishedDate formats the frontend sends. An
// empty string means "not set" and yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Invalid("Invalid date", apperr.FieldError{
		Field:   "publishedDate",
		Message: "publishedDate must be an RFC 3339 timestamp or YYYY-MM-DD",
	})
}
