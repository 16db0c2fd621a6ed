package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("catalog.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "catalog.yaml:7")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("rules.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: rules.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[2].props[0].type", "unknown prop type \"colour\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[2].props[0].type", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown prop type")
}

func TestComponentErrorIncludesComponentName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not in catalog")
	err := NewComponentError("PricingCard", "", underlying)

	var componentErr *ComponentError
	require.ErrorAs(t, err, &componentErr)
	require.Equal(t, "PricingCard", componentErr.Component)
	require.Equal(t, "not in catalog", componentErr.Message)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "component error [PricingCard]: not in catalog", err.Error())
}
