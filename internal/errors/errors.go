// Package errors provides the structured error types shared by the csvcli
// command-line tools. Every fatal error carries a stable code so the CLIs
// can log and report failures consistently.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies an error category.
type Code string

const (
	// CodeConfiguration marks invalid configuration or flag values.
	// Execution never starts when one of these is reported.
	CodeConfiguration Code = "CONFIGURATION_ERROR"
	// CodeSchemaMismatch marks requested columns that are absent from
	// the input header.
	CodeSchemaMismatch Code = "SCHEMA_MISMATCH"
	// CodeExternalTool marks failures of the external converter step.
	CodeExternalTool Code = "EXTERNAL_TOOL_ERROR"
	// CodeFileSystem marks unreadable inputs or unwritable outputs.
	CodeFileSystem Code = "FILESYSTEM_ERROR"
)

// CLIError is a coded error with optional detail lines.
type CLIError struct {
	Code    Code
	Message string
	Details []string
	Err     error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg = msg + ": " + strings.Join(e.Details, ", ")
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped error, if any
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a new CLIError with the given code and message
func New(code Code, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// Wrap creates a new CLIError wrapping an underlying error
func Wrap(code Code, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// Configuration creates a configuration error
func Configuration(format string, args ...interface{}) *CLIError {
	return New(CodeConfiguration, fmt.Sprintf(format, args...))
}

// SchemaMismatch creates an error listing columns that are not present
// in the input header.
func SchemaMismatch(missing []string) *CLIError {
	return &CLIError{
		Code:    CodeSchemaMismatch,
		Message: "the following columns are not present",
		Details: missing,
	}
}

// ExternalTool creates an external converter error
func ExternalTool(message string, err error) *CLIError {
	return Wrap(CodeExternalTool, message, err)
}

// FileSystem creates a filesystem error for the given operation
func FileSystem(operation string, err error) *CLIError {
	return Wrap(CodeFileSystem, fmt.Sprintf("file system error during %s", operation), err)
}

// CodeOf returns the code of err if it is (or wraps) a CLIError, or an
// empty Code otherwise.
func CodeOf(err error) Code {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// ExitCode maps an error to the process exit status. All fatal errors
// terminate the whole invocation; there is no partial-success mode.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
