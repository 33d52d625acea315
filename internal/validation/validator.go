package validation

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Cognito hosted domain prefixes allow lowercase alphanumerics and hyphens
// and must start with a letter.
var gatewayNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// New returns a configured validator with the custom gateway_name rule
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("gateway_name", func(fl validatorv10.FieldLevel) bool {
		return gatewayNamePattern.MatchString(fl.Field().String())
	})

	return v
}
