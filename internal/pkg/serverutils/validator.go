package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags. The
// returned validator.ValidationErrors are mapped to a 400 by the error
// handler middleware.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
