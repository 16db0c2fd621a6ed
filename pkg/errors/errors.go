package errors

import (
	"fmt"
	"regexp"
	"strconv"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError represents a catalog or rules file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

// NewYAMLParseError constructs a ParseError, taking the line number from a
// yaml.v3 error message when one is present.
func NewYAMLParseError(path string, err error) error {
	return NewParseError(path, extractLine(err), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog or rules validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError reports a lookup or selection failure for a catalog component.
type ComponentError struct {
	Component string
	Message   string
	Err       error
}

// NewComponentError constructs a ComponentError for the named component.
func NewComponentError(component, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ComponentError{Component: component, Message: message, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("component error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("component error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
