package settings

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeValidation indicates an invalid value (bad enum, out of range)
	ErrTypeValidation ErrorType = iota
	// ErrTypeNotFound indicates a step or control that does not exist
	ErrTypeNotFound
	// ErrTypeParse indicates a malformed stored or imported document
	ErrTypeParse
	// ErrTypeStorage indicates a failure reading or writing the backing store
	ErrTypeStorage
	// ErrTypeClipboard indicates the system clipboard could not be written
	ErrTypeClipboard
	// ErrTypeScript indicates a step script that does not compile
	ErrTypeScript
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeStorage:
		return "Storage Error"
	case ErrTypeClipboard:
		return "Clipboard Error"
	case ErrTypeScript:
		return "Script Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is the error type returned by settings, store and editor operations.
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{Type: ErrTypeValidation, Message: message}
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(message string) *Error {
	return &Error{Type: ErrTypeNotFound, Message: message}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

// NewStorageError creates a storage error
func NewStorageError(message string, err error) *Error {
	return &Error{Type: ErrTypeStorage, Message: message, Err: err}
}

// NewClipboardError creates a clipboard error
func NewClipboardError(message string, err error) *Error {
	return &Error{Type: ErrTypeClipboard, Message: message, Err: err}
}

// NewScriptError creates a script lint error
func NewScriptError(message string, err error) *Error {
	return &Error{Type: ErrTypeScript, Message: message, Err: err}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrTypeValidation) }

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool { return isType(err, ErrTypeNotFound) }

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool { return isType(err, ErrTypeParse) }

// IsStorageError checks if an error is a storage error
func IsStorageError(err error) bool { return isType(err, ErrTypeStorage) }

// IsClipboardError checks if an error is a clipboard error
func IsClipboardError(err error) bool { return isType(err, ErrTypeClipboard) }

// IsScriptError checks if an error is a script lint error
func IsScriptError(err error) bool { return isType(err, ErrTypeScript) }

// Hint returns user-facing troubleshooting advice for an error
func Hint(err error) []string {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}

	switch e.Type {
	case ErrTypeNotFound:
		return []string{
			"Run 'clickme step list' to see step numbers",
			"Step numbers change after a step is removed",
		}
	case ErrTypeStorage:
		return []string{
			"Check that the data directory is writable",
			"Use --backend memory to edit without persisting",
		}
	case ErrTypeClipboard:
		return []string{
			"On Linux, install xclip or xsel (or wl-clipboard on Wayland)",
			"Use 'clickme export' without --copy and copy the output manually",
		}
	case ErrTypeScript:
		return []string{
			"Scripts may be raw JavaScript or wrapped in <script> tags",
			"The page still renders; the browser will report the same error",
		}
	case ErrTypeValidation:
		return []string{"Check the value against 'clickme --help' for the command"}
	default:
		return nil
	}
}

// JoinErrors renders a list of errors one per line.
func JoinErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}
