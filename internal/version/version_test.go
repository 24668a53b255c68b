package version

import (
	"strings"
	"testing"
)

func TestVersionPopulated(t *testing.T) {
	if Version == "" {
		t.Error("Version is empty after init")
	}
	if Commit == "" {
		t.Error("Commit is empty after init")
	}
}

func TestString(t *testing.T) {
	got := String("clickme")
	if !strings.HasPrefix(got, "clickme "+Version) {
		t.Errorf("String() = %q, want prefix %q", got, "clickme "+Version)
	}
	if !strings.Contains(got, "(commit: "+Commit+")") {
		t.Errorf("String() = %q, missing commit", got)
	}
}
