package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/rileyhilliard/simplelogin/internal/ui"
)

var validate = validator.New()

// Validate checks the config for errors and returns structured error messages.
// Field patterns are compiled here so the login screen never receives one
// that cannot be parsed.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but simplelogin only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade simplelogin or lower the version in simplelogin.yaml.")
	}

	if err := validate.Struct(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			describeValidation(err),
			"Check simplelogin.yaml or your SIMPLELOGIN_* environment variables.")
	}

	if err := validatePattern("username", cfg.Username.Pattern); err != nil {
		return err
	}
	if err := validatePattern("password", cfg.Password.Pattern); err != nil {
		return err
	}

	return nil
}

func validatePattern(field, pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := ui.CompilePattern(pattern); err != nil {
		return errors.NewInvalidPattern(field, err)
	}
	return nil
}

// describeValidation turns validator errors into one readable sentence.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return "Invalid configuration"
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", name))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %q", name, fe.Tag()))
		}
	}
	return "Invalid configuration: " + strings.Join(problems, "; ")
}
