package validators

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagLogToken accepts printable text without whitespace, e.g. a server name or a commit hash.
const TagLogToken = "logtoken"

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	v := validator.New()
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(TagLogToken, isLogToken)
	return v
}

func isLogToken(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
