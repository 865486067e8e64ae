package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// Code identifies a catalog failure category.
type Code string

const (
	CodeUnknownToken      Code = "UnknownToken"
	CodeAliasChain        Code = "AliasChain"
	CodeDuplicateGroup    Code = "DuplicateGroup"
	CodeUnknownGroup      Code = "UnknownGroup"
	CodeDuplicateVariant  Code = "DuplicateVariant"
	CodeNotFound          Code = "NotFound"
	CodeUnknownArgument   Code = "UnknownArgument"
	CodeInvalidOption     Code = "InvalidOption"
	CodeInvalidValue      Code = "InvalidValue"
	CodeAlreadyConfigured Code = "AlreadyConfigured"
	CodeUnknownPreset     Code = "UnknownPreset"
	CodeRenderFailed      Code = "RenderFailed"
)

// Sentinels for errors.Is comparisons. They match any CatalogError with the same code.
var (
	ErrUnknownToken      = &CatalogError{Code: CodeUnknownToken}
	ErrAliasChain        = &CatalogError{Code: CodeAliasChain}
	ErrDuplicateGroup    = &CatalogError{Code: CodeDuplicateGroup}
	ErrUnknownGroup      = &CatalogError{Code: CodeUnknownGroup}
	ErrDuplicateVariant  = &CatalogError{Code: CodeDuplicateVariant}
	ErrNotFound          = &CatalogError{Code: CodeNotFound}
	ErrUnknownArgument   = &CatalogError{Code: CodeUnknownArgument}
	ErrInvalidOption     = &CatalogError{Code: CodeInvalidOption}
	ErrInvalidValue      = &CatalogError{Code: CodeInvalidValue}
	ErrAlreadyConfigured = &CatalogError{Code: CodeAlreadyConfigured}
	ErrUnknownPreset     = &CatalogError{Code: CodeUnknownPreset}
	ErrRenderFailed      = &CatalogError{Code: CodeRenderFailed}
)

// CatalogError is returned by every catalog operation that rejects a declaration,
// a lookup or an argument value. Key names the offending group title, variant,
// argument, token or preset; Domain lists the accepted values when known.
type CatalogError struct {
	Code    Code
	Key     string
	Message string
	Domain  []string
	Err     error
}

// New constructs a CatalogError.
func New(code Code, key, message string) error {
	return &CatalogError{Code: code, Key: key, Message: message}
}

// NewWithDomain constructs a CatalogError that carries the accepted values.
func NewWithDomain(code Code, key, message string, domain []string) error {
	return &CatalogError{Code: code, Key: key, Message: message, Domain: append([]string(nil), domain...)}
}

// Wrap constructs a CatalogError around an underlying cause.
func Wrap(code Code, key string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &CatalogError{Code: code, Key: key, Message: message, Err: err}
}

func (e *CatalogError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Key != "" {
		fmt.Fprintf(&b, " [%s]", e.Key)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Domain) > 0 {
		fmt.Fprintf(&b, " (expected one of: %s)", strings.Join(e.Domain, ", "))
	}
	return b.String()
}

// Unwrap exposes the underlying error.
func (e *CatalogError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a CatalogError with the same code. A target
// carrying a key only matches errors about that same key.
func (e *CatalogError) Is(target error) bool {
	t, ok := target.(*CatalogError)
	if !ok || e == nil {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}

// CodeOf returns the catalog code carried by err, or an empty code.
func CodeOf(err error) Code {
	var catalogErr *CatalogError
	if stdErrors.As(err, &catalogErr) {
		return catalogErr.Code
	}
	return ""
}

// KeyOf returns the offending identifier carried by err, or an empty string.
func KeyOf(err error) string {
	var catalogErr *CatalogError
	if stdErrors.As(err, &catalogErr) {
		return catalogErr.Key
	}
	return ""
}

// ParseError represents a configuration file parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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
