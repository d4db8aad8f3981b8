// Package errors defines the classified error model for spider.
//
// Every failure the validator or generator can report is one of a closed
// set of kinds. A ConfigError carries its kind plus an optional context
// parameter (an offending path, field, or key); the user-facing message is
// produced only when Error() is called, so callers can match on kind
// without parsing text.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies a category of classified error.
type Kind string

const (
	// Configuration-absence errors.
	KindConfigNotFound Kind = "config_not_found"
	KindEmptyConfig    Kind = "empty_config"
	KindInvalidConfig  Kind = "invalid_config"

	// Schema errors.
	KindInvalidFontsConfig Kind = "invalid_fonts_config"
	KindInvalidGroupsType  Kind = "invalid_groups_type"
	KindNullValue          Kind = "null_value"
	KindValidationFailed   Kind = "config_validation_failed"

	// Semantic errors.
	KindNothingToGenerate       Kind = "nothing_to_generate"
	KindNoPathInGroup           Kind = "no_path_in_group"
	KindNoWildcardInPath        Kind = "no_wildcard_in_path"
	KindPathNotExists           Kind = "path_not_exists"
	KindNoClassName             Kind = "no_class_name"
	KindEmptyClassName          Kind = "empty_class_name"
	KindClassNameContainsSpaces Kind = "class_name_contains_spaces"

	// I/O errors. Fatal, abort the run.
	KindWriteFailed Kind = "write_failed"
)

// messages maps each kind to its display template. Templates with a %s
// receive the error's Param.
var messages = map[Kind]string{
	KindConfigNotFound: "no spider config file found: %s",
	KindEmptyConfig:    "config file is empty: %s",
	KindInvalidConfig:  "config file could not be parsed: %s",

	KindInvalidFontsConfig: "fonts must be a boolean or a mapping of font families",
	KindInvalidGroupsType:  "groups must be a list of group declarations",
	KindNullValue:          "%s cannot be null",
	KindValidationFailed:   "config validation failed: %s",

	KindNothingToGenerate:       "there is nothing to generate: declare at least one group or enable fonts",
	KindNoPathInGroup:           "every group must declare a path or a non-empty sub_groups list",
	KindNoWildcardInPath:        "path %q must not contain wildcards",
	KindPathNotExists:           "path %q does not exist or is not a directory",
	KindNoClassName:             "group is missing the required class_name",
	KindEmptyClassName:          "class_name cannot be empty",
	KindClassNameContainsSpaces: "class_name must not contain whitespace",

	KindWriteFailed: "failed to write %s",
}

// ConfigError is a classified spider error.
type ConfigError struct {
	Kind  Kind
	Param string
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	tmpl, ok := messages[e.Kind]
	if !ok {
		tmpl = string(e.Kind)
	}

	var msg string
	if e.Param != "" {
		msg = fmt.Sprintf(tmpl, e.Param)
	} else {
		msg = tmpl
	}

	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}

	return msg
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is matches errors by kind, ignoring parameters and causes.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}

	return false
}

// New creates a classified error without a context parameter.
func New(kind Kind) *ConfigError {
	return &ConfigError{Kind: kind}
}

// Newf creates a classified error carrying a context parameter, such as the
// offending path or field name.
func Newf(kind Kind, param string) *ConfigError {
	return &ConfigError{Kind: kind, Param: param}
}

// Wrap creates a classified error with an underlying cause.
func Wrap(kind Kind, param string, cause error) *ConfigError {
	return &ConfigError{Kind: kind, Param: param, Cause: cause}
}

// KindOf returns the kind of a classified error, or the empty kind when the
// error is not a ConfigError.
func KindOf(err error) Kind {
	var e *ConfigError
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
