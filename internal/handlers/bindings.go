package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrors flattens a request binding failure into user-facing
// messages, one per failed field.
func bindingErrors(err error) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{"Invalid request body"}
	}

	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "min", "max":
			msgs = append(msgs, field+" is out of range")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return msgs
}
