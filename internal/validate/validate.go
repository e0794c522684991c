// Package validate holds the request payload schemas and the shared
// validator instance. Every field violation is aggregated into a single
// InvalidArgument error before any I/O happens.
package validate

import (
	"github.com/go-playground/validator/v10"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Check validates a payload struct and returns an aggregated
// InvalidArgument error, or nil.
func Check(payload any) error {
	if err := v.Struct(payload); err != nil {
		return apperr.From(err)
	}
	return nil
}
