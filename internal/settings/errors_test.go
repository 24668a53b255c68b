package settings

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeValidation, "Validation Error"},
		{ErrTypeNotFound, "Not Found"},
		{ErrTypeParse, "Parse Error"},
		{ErrTypeStorage, "Storage Error"},
		{ErrTypeClipboard, "Clipboard Error"},
		{ErrTypeScript, "Script Error"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("failed to save settings", cause)

	msg := err.Error()
	if !strings.Contains(msg, "Storage Error") || !strings.Contains(msg, "failed to save settings") || !strings.Contains(msg, "disk full") {
		t.Errorf("Error() = %q", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap() does not expose the cause")
	}

	plain := NewNotFoundError("step 7 not found")
	if plain.Error() != "Not Found: step 7 not found" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestIsHelpers_Wrapped(t *testing.T) {
	err := fmt.Errorf("remove step: %w", NewNotFoundError("step 3 not found"))

	if !IsNotFound(err) {
		t.Error("IsNotFound() should see through wrapping")
	}
	if IsValidationError(err) {
		t.Error("IsValidationError() = true for a not-found error")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("IsNotFound() = true for a plain error")
	}
}

func TestHint(t *testing.T) {
	if hints := Hint(NewClipboardError("copy failed", nil)); len(hints) == 0 {
		t.Error("Hint() returned nothing for clipboard error")
	}
	if hints := Hint(errors.New("plain")); hints != nil {
		t.Errorf("Hint() = %v for a plain error", hints)
	}
}

func TestJoinErrors(t *testing.T) {
	got := JoinErrors([]error{errors.New("a"), errors.New("b")})
	if got != "a\nb" {
		t.Errorf("JoinErrors() = %q", got)
	}
}
