package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"

	"maludy/shared/failure"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
	}
)

// violations converts every validator error into a field-tagged violation.
// The whole batch is reported so the caller can fix all problems at once.
func violations(err error) []failure.FieldViolation {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldViolation{{Field: "", Message: err.Error()}}
	}

	out := make([]failure.FieldViolation, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			errStr = valErr.Error()
		} else {
			errStr = strings.ReplaceAll(errStr, "{field}", field)
			errStr = strings.ReplaceAll(errStr, "{param}", param)
		}

		out = append(out, failure.FieldViolation{Field: field, Message: errStr})
	}

	return out
}
