package httpx

import (
	"errors"
	"fmt"
	"strings"

	"booktracker/internal/book"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("username", validateUsername)
	validate.RegisterValidation("book_status", validateBookStatus)
}

// validateUsername rejects names that cannot be used as a personal library
// file name or a credential line.
func validateUsername(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `,/\`) && strings.TrimSpace(name) == name
}

func validateBookStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case book.StatusNotStarted, book.StatusOngoing, book.StatusCompleted:
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s any) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	var out []ValidationError
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "excludesall":
			message = fmt.Sprintf("%s must not contain commas", field)
		case "username":
			message = fmt.Sprintf("%s must not contain commas, slashes or surrounding spaces", field)
		case "book_status":
			message = fmt.Sprintf("%s must be one of %q, %q, %q", field, book.StatusNotStarted, book.StatusOngoing, book.StatusCompleted)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, ValidationError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return out
}
