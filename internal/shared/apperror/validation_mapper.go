package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first validator failure into a 400 AppError
// with a human-readable field name ("start_date" -> "Start Date").
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
		case "oneof":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be one of: %s", field, e.Param()), http.StatusBadRequest)
		default:
			return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
		}
	}

	return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}
