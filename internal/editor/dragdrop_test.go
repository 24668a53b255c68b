package editor

import (
	"testing"

	"github.com/muurk/clickme/internal/settings"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		in      string
		want    Token
		wantErr bool
	}{
		{"Button", TokenButton, false},
		{"button", TokenButton, false},
		{"JS Script", TokenScript, false},
		{"script", TokenScript, false},
		{"js", TokenScript, false},
		{"iframe", "", true},
	}

	for _, tt := range tests {
		got, err := ParseToken(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseToken(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestDrop_ButtonOnEmptyStep(t *testing.T) {
	st := AddStep(DefaultState())
	id := st.Settings.Steps[1].ID

	st, applied, err := Drop(st, TokenButton, id)
	if err != nil || !applied {
		t.Fatalf("Drop() = %v, %v", applied, err)
	}
	step := st.Settings.Steps[1]
	if step.Button != settings.ControlNormal {
		t.Errorf("Button = %q, want normal", step.Button)
	}
	if step.ButtonSettings.Left != settings.Pct(settings.CenterPosition) {
		t.Error("dropped button should be centred")
	}
}

func TestDrop_DuplicateIgnored(t *testing.T) {
	st := DefaultState()
	id := st.Settings.Steps[0].ID
	st, _ = UpdateControl(st, id, ControlPatch{Text: Ptr("Keep")})

	got, applied, err := Drop(st, TokenButton, id)
	if err != nil || applied {
		t.Fatalf("Drop() duplicate = %v, %v; want ignored", applied, err)
	}
	if got.CurrentStep().ButtonSettings.Text != "Keep" {
		t.Error("duplicate drop changed the existing button")
	}

	st, _, _ = Drop(st, TokenScript, id)
	st, _ = SetScript(st, id, "custom()")
	st, applied, _ = Drop(st, TokenScript, id)
	if applied || st.CurrentStep().Script != "custom()" {
		t.Error("duplicate script drop should be ignored")
	}
}

func TestDrop_ScriptGetsDefaultPayload(t *testing.T) {
	st := DefaultState()

	st, applied, err := Drop(st, TokenScript, st.Settings.Steps[0].ID)
	if err != nil || !applied {
		t.Fatalf("Drop() = %v, %v", applied, err)
	}
	if st.CurrentStep().Script != settings.DefaultScript {
		t.Errorf("Script = %q", st.CurrentStep().Script)
	}
}

func TestDrop_OnListTargetsFirstStep(t *testing.T) {
	st := AddStep(DefaultState())

	st, applied, err := Drop(st, TokenScript, DropOnList)
	if err != nil || !applied {
		t.Fatalf("Drop() = %v, %v", applied, err)
	}
	if !st.Settings.Steps[0].HasScript() || st.Settings.Steps[1].HasScript() {
		t.Error("list drop should target the first step")
	}
}

func TestDrop_OnListCreatesStep(t *testing.T) {
	st := DefaultState()
	st, _ = RemoveStep(st, st.Settings.Steps[0].ID)

	st, applied, err := Drop(st, TokenButton, DropOnList)
	if err != nil || !applied {
		t.Fatalf("Drop() = %v, %v", applied, err)
	}
	if st.StepCount() != 1 || !st.Settings.Steps[0].HasControl() {
		t.Errorf("steps = %+v", st.Settings.Steps)
	}
}

func TestDrop_UnknownStep(t *testing.T) {
	if _, _, err := Drop(DefaultState(), TokenButton, 77); !settings.IsNotFound(err) {
		t.Errorf("Drop() error = %v, want not found", err)
	}
}
