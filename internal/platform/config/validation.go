package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagHTTPURL accepts absolute http and https URLs only. Upstream base URLs use it.
const tagHTTPURL = "httpurl"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their koanf keys so messages match config files and
	// APP_ variables.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation(tagHTTPURL, isHTTPURL); err != nil {
		panic(err)
	}

	return v
}

func isHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FieldError is one invalid setting.
type FieldError struct {
	// Path is the dotted koanf key, such as "services.amap.base_url".
	Path   string
	Reason string
}

// EnvVar is the environment variable that overrides the setting.
func (e FieldError) EnvVar() string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(e.Path, ".", envLevelSeparator))
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s (%s)", e.Path, e.Reason, e.EnvVar())
}

// ValidationError lists every invalid setting found by Validate.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		lines[i] = f.Error()
	}

	return "config validation failed:\n  " + strings.Join(lines, "\n  ")
}

// Validate checks c and returns a *ValidationError naming every invalid
// setting. The service refuses to start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Path: fieldPath(fe.Namespace()), Reason: reason(fe)})
	}

	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when " + strings.ToLower(fe.Param())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case tagHTTPURL:
		return "must be an absolute http(s) URL"
	default:
		return "failed validation: " + fe.Tag()
	}
}

// fieldPath strips the root struct name from a validator namespace:
// "Config.services.amap.base_url" becomes "services.amap.base_url".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}
