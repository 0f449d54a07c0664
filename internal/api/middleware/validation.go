package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"cn7-transcriptor/internal/api/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds a multipart or urlencoded form into req and checks
// struct tags, then domain rules when req implements Validator.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return err
		}

		validationErrors := make(map[string]string)

		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrs {
				field := strings.ToLower(fieldError.Field())

				switch fieldError.Tag() {
				case "required":
					validationErrors[field] = "is required"
				case "max":
					validationErrors[field] = "is too long"
				default:
					validationErrors[field] = "is invalid"
				}
			}
		} else {
			validationErrors["request"] = "invalid multipart form"
		}

		return errors.NewValidationError("Validation failed", validationErrors)
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}
