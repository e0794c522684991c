// Package apperr carries the error taxonomy every handler surfaces to
// callers: a stable kind, a human-readable message and optional
// per-field detail for validation failures.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	PermissionDenied
	InvalidArgument
	NotFound
	AlreadyExists
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Invalid builds an InvalidArgument error carrying per-field detail.
func Invalid(message string, fields ...FieldError) *Error {
	return &Error{Kind: InvalidArgument, Message: message, Fields: fields}
}

// From coerces any error into an *Error. Validation-library errors are
// unpacked into field details; anything unclassified becomes Internal
// with the original cause preserved for logging.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, FieldError{
				Field:   fieldName(fe),
				Message: fieldMessage(fe),
			})
		}
		return Invalid("Validation error", fields...)
	}

	return Wrap(Internal, "An unknown error occurred", err)
}

func KindOf(err error) Kind {
	return From(err).Kind
}

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case PermissionDenied:
		return "permission-denied"
	case InvalidArgument:
		return "invalid-argument"
	case NotFound:
		return "not-found"
	case AlreadyExists:
		return "already-exists"
	default:
		return "internal"
	}
}

// CallableStatus is the status string used in the callable error envelope.
func (k Kind) CallableStatus() string {
	switch k {
	case Unauthenticated:
		return "UNAUTHENTICATED"
	case PermissionDenied:
		return "PERMISSION_DENIED"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case NotFound:
		return "NOT_FOUND"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL"
	}
}

func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case PermissionDenied:
		return http.StatusForbidden
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace looks like "CreateBlogPost.Title"; drop the struct.
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return lowerFirst(ns)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldName(fe), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
