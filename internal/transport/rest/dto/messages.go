package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps Field.tag to the message shown to the client.
var fieldMessages = map[string]string{
	"Name.required":         "Name is required",
	"Email.required":        "Email is required",
	"Email.email":           "Invalid email format",
	"Password.required":     "Password is required",
	"RefreshToken.required": "Refresh token is required",
	"Title.required":        "Title cannot be empty",
	"Title.max":             "Title cannot exceed 100 characters",
}

const fallbackMessage = "Invalid input"

// FirstValidationMessage picks the message of the first failing field.
// validator reports failures in struct declaration order, which keeps the
// surfaced message deterministic for multi-field violations.
func FirstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fallbackMessage
	}

	fe := verrs[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fallbackMessage
}
