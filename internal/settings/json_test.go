package settings

import (
	"fmt"
	"strings"
	"testing"
)

func TestDecode_LegacyStringValuedDocument(t *testing.T) {
	// Numbers as strings, no ids, no default-name markers.
	data := []byte(`{
		"url": "https://target.example",
		"background": "white",
		"credentialless": false,
		"steps": {
			"step2": {"name": "Step 2", "iframe": {"width": "640", "height": "480"}, "timeout": "2500"},
			"step1": {
				"name": "Login",
				"iframe": {"width": "800", "height": "600"},
				"button": "normal",
				"buttonSettings": {"type": "normal", "left": "20", "top": "45", "width": "100", "height": "40", "text": "Go", "color": "#ff0000"},
				"timeout": "1000"
			}
		}
	}`)

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if s.URL != "https://target.example" {
		t.Errorf("URL = %q", s.URL)
	}
	if s.Background != BackgroundWhite {
		t.Errorf("Background = %q, want white", s.Background)
	}
	if s.Credentialless {
		t.Error("Credentialless = true, want false")
	}
	if len(s.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(s.Steps))
	}

	first := s.Steps[0]
	if first.Name != "Login" {
		t.Errorf("Steps[0].Name = %q, want Login", first.Name)
	}
	if first.Frame.Width != 800 || first.Frame.Height != 600 {
		t.Errorf("Steps[0].Frame = %+v, want 800x600", first.Frame)
	}
	if !first.HasControl() || first.ButtonSettings.Text != "Go" || first.ButtonSettings.Left != Pct(20) {
		t.Errorf("Steps[0].ButtonSettings = %+v", first.ButtonSettings)
	}

	second := s.Steps[1]
	if second.Name != "" {
		t.Errorf("Steps[1].Name = %q, want empty (default name)", second.Name)
	}
	if second.DisplayName(2) != "Step 2" {
		t.Errorf("Steps[1].DisplayName(2) = %q", second.DisplayName(2))
	}
	if second.Timeout != 2500 {
		t.Errorf("Steps[1].Timeout = %d, want 2500", second.Timeout)
	}
	if second.HasControl() {
		t.Error("Steps[1] should have no control")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`not json`,
		`{"steps": {"step1": {"iframe": []}}}`,
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := Decode([]byte(data))
			if err == nil {
				t.Fatal("Decode() expected error")
			}
			if !IsParseError(err) {
				t.Errorf("Decode() error = %v, want parse error", err)
			}
		})
	}
}

func TestDecode_IgnoresUnknownStepKeys(t *testing.T) {
	s, err := Decode([]byte(`{"url":"https://a.example","background":"none","steps":{"step1":{},"extra":{},"step0":{}}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(s.Steps) != 1 {
		t.Fatalf("len(Steps) = %d, want 1", len(s.Steps))
	}
	if s.Steps[0].Frame.Width != DefaultFrameWidth || s.Steps[0].Timeout != DefaultTimeout {
		t.Errorf("empty step not defaulted: %+v", s.Steps[0])
	}
}

func TestEncode_NumericKeyOrder(t *testing.T) {
	s := Default()
	for i := 2; i <= 12; i++ {
		s.Steps = append(s.Steps, NewStep(StepID(i)))
	}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)

	last := -1
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf(`"step%d":`, i)
		idx := strings.Index(out, key)
		if idx < 0 {
			t.Fatalf("missing key %s", key)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(back.Steps) != 12 {
		t.Fatalf("len(Steps) = %d, want 12", len(back.Steps))
	}
	for i, step := range back.Steps {
		if step.ID != StepID(i+1) {
			t.Errorf("Steps[%d].ID = %d, want %d", i, step.ID, i+1)
		}
	}
}

func TestEncode_WritesDisplayNames(t *testing.T) {
	s := Default()
	s.Steps = append(s.Steps, &Step{ID: 2, Name: "Confirm", Frame: Frame{Width: 1, Height: 1}, Timeout: 1})

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"name":"Step 1"`, `"name":"Confirm"`, `"url":"https://example.com"`, `"background":"social-media"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() missing %s in %s", want, out)
		}
	}
	if strings.Contains(out, "pageTitle") {
		t.Error("empty pageTitle should be omitted")
	}
}

func TestEncode_RetainedRoundTrip(t *testing.T) {
	s := Default()
	s.Steps[0].Retained = map[ControlType]ButtonSettings{
		ControlCaptchaPuzzle: {Type: ControlCaptchaPuzzle, Left: Pct(30), Top: Pct(40), Step: 3, TotalDots: 4},
	}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, ok := back.Steps[0].Retained[ControlCaptchaPuzzle]
	if !ok {
		t.Fatal("retained puzzle settings lost")
	}
	if got.Step != 3 || got.Left != Pct(30) {
		t.Errorf("retained = %+v", got)
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{`800`, 800},
		{`"800"`, 800},
		{`" 42 "`, 42},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`12.7`, 12},
		{`"-5"`, -5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n Number
			if err := n.UnmarshalJSON([]byte(tt.in)); err != nil {
				t.Fatalf("UnmarshalJSON(%s) error = %v", tt.in, err)
			}
			if n != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %d, want %d", tt.in, n, tt.want)
			}
		})
	}
}

func TestPercent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Percent
	}{
		{`0`, Pct(0)},
		{`"0"`, Pct(0)},
		{`35`, Pct(35)},
		{`" 35 "`, Pct(35)},
		{`""`, Percent{}},
		{`null`, Percent{}},
		{`"left"`, Percent{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Percent
			if err := p.UnmarshalJSON([]byte(tt.in)); err != nil {
				t.Fatalf("UnmarshalJSON(%s) error = %v", tt.in, err)
			}
			if p != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.in, p, tt.want)
			}
		})
	}
}

func TestEncode_ZeroPositionRoundTrip(t *testing.T) {
	s := Default()
	s.Steps[0].ButtonSettings.Left = Pct(0)
	s.Steps[0].ButtonSettings.Top = Pct(0)

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), `"left":0,"top":0`) {
		t.Errorf("Encode() dropped the zero position: %s", data)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	bs := back.Steps[0].ButtonSettings
	if bs.Left != Pct(0) || bs.Top != Pct(0) {
		t.Errorf("position = %v,%v, want 0,0", bs.Left, bs.Top)
	}
}

func TestDecode_MissingPositionCentres(t *testing.T) {
	data := []byte(`{"url": "https://a.example", "background": "none", "steps": {
		"step1": {"name": "Step 1", "iframe": {"width": 800, "height": 600}, "button": "captcha-checkbox",
			"buttonSettings": {"type": "captcha-checkbox", "left": ""}, "timeout": 1000}
	}}`)

	s, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	bs := s.Steps[0].ButtonSettings
	if bs.Left != Pct(CenterPosition) || bs.Top != Pct(CenterPosition) {
		t.Errorf("position = %v,%v, want centred", bs.Left, bs.Top)
	}
}

func TestDecode_DefaultNameMarker(t *testing.T) {
	tests := []struct {
		name     string
		step     string
		wantName string
	}{
		{"custom name equal to position", `{"name": "Step 1", "defaultName": false}`, "Step 1"},
		{"marked default", `{"name": "Step 3", "defaultName": true}`, ""},
		{"unmarked positional name", `{"name": "Step 1"}`, ""},
		{"unmarked custom name", `{"name": "Login"}`, "Login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"url": "https://a.example", "background": "none", "steps": {"step1": ` + tt.step + `}}`)
			s, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if s.Steps[0].Name != tt.wantName {
				t.Errorf("Name = %q, want %q", s.Steps[0].Name, tt.wantName)
			}
		})
	}
}

func TestEncode_CustomNameSurvivesRenumbering(t *testing.T) {
	s := Default()
	s.Steps = append(s.Steps, NewStep(2), &Step{ID: 3, Name: "Step 2", Timeout: 1})

	// Step 3 was renamed "Step 2"; removing step 2 moves it into position 2.
	s.Steps = []*Step{s.Steps[0], s.Steps[2]}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.Steps[1].Name != "Step 2" {
		t.Errorf("custom name lost: Name = %q", back.Steps[1].Name)
	}
	if back.Steps[0].Name != "" {
		t.Errorf("default name became custom: Name = %q", back.Steps[0].Name)
	}
}

func TestEncode_NextIDRoundTrip(t *testing.T) {
	s := Default()
	s.NextID = 9

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.NextID != 9 {
		t.Errorf("NextID = %d, want 9", back.NextID)
	}
}

func TestPretty(t *testing.T) {
	out, err := Pretty([]byte(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	want := "{\n  \"a\": {\n    \"b\": 1\n  }\n}"
	if string(out) != want {
		t.Errorf("Pretty() = %q, want %q", out, want)
	}

	if _, err := Pretty([]byte(`{bad`)); err == nil {
		t.Error("Pretty() expected error for invalid JSON")
	}
}

func TestParseStepKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"step1", 1, true},
		{"step10", 10, true},
		{"step0", 0, false},
		{"step", 0, false},
		{"stepx", 0, false},
		{"Step1", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseStepKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStepKey(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
