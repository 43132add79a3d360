package rest

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessages converts validator errors into client-facing messages,
// one per violated rule, keyed by the JSON field name.
func validationMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return msgs
}

// jsonFieldName lowers the first rune of a struct field name to match the
// JSON tags on the DTOs.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
