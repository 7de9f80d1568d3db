package middleware

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"speech-summarizer/internal/api/errors"
)

var tagNamesOnce sync.Once

// useTagNames makes validation errors report the json (or form) name of a
// field instead of the Go name.
func useTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// ValidateRequest binds the JSON body into req and validates its tags
func ValidateRequest(c *gin.Context, req any) error {
	return validate(c, req, binding.JSON, "invalid JSON format")
}

// ValidateForm binds form fields into req and validates its tags
func ValidateForm(c *gin.Context, req any) error {
	return validate(c, req, binding.Form, "invalid form data")
}

func validate(c *gin.Context, req any, b binding.Binding, malformed string) error {
	useTagNames()

	err := c.ShouldBindWith(req, b)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		for _, fieldError := range validationErrs {
			fields[fieldError.Field()] = describe(fieldError)
		}
	} else {
		fields["request"] = malformed
	}

	return errors.NewValidationError("Validation failed", fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "must be one of the allowed values"
	default:
		return "is invalid"
	}
}
