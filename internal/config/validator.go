package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct constraints on a parsed configuration.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// Warnings returns non-critical issues, like example values left in place.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.Environment == "prod" && strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, WarnMsgDebugInProd)
	}
	return warnings
}
