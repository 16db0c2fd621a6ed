package schema

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	propNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validator returns the shared validator with the prop_name, prop_type and
// editor_kind tags registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("prop_name", func(fl validator.FieldLevel) bool {
			return propNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("prop_type", func(fl validator.FieldLevel) bool {
			return PropType(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("editor_kind", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			return EditorKind(value).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// ConvertValidationError normalizes validator errors into ValidationErrors.
// fallback names the field reported for errors that are not field-level.
func ConvertValidationError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return propdeckerrors.NewValidationError(field, msg, err)
	}

	return propdeckerrors.NewValidationError(fallback, err.Error(), err)
}

// yamlishFieldName turns Catalog.Components[0].Props[1].PropDefinition.Type into
// components[0].props[1].type, dropping the root and inlined structs.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "PropDefinition" {
			continue
		}
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
