package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their YAML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags and reports every violation in one error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("invalid configuration: nil")
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := strings.TrimPrefix(fieldError.Namespace(), "Config.")
		problems = append(problems, field+" "+describe(fieldError))
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fieldError.Param())
	case "gte":
		return "must be at least " + fieldError.Param()
	case "lte":
		return "must be at most " + fieldError.Param()
	case "gt":
		return "must be positive"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// ValidateAPIKey checks the key format for a provider
func ValidateAPIKey(apiKey string, provider string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", provider)
	}

	switch provider {
	case ProviderOpenAI:
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	case ProviderGemini:
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	return nil
}
