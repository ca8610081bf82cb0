package validate

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct checks the `validate` tags on a request DTO.
func Struct(v any) error {
	return validate.Struct(v)
}
