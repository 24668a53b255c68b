package settings

import (
	"bytes"
	"encoding/json"
	"sort"
)

// settingsWire is the JSON shape of Settings with steps kept raw so they can
// be written in numeric key order.
type settingsWire struct {
	URL            string          `json:"url"`
	Background     Background      `json:"background"`
	Credentialless bool            `json:"credentialless"`
	PageTitle      string          `json:"pageTitle,omitempty"`
	Steps          json.RawMessage `json:"steps"`
	NextID         StepID          `json:"nextId,omitempty"`
}

// stepWire adds the default-name marker to a stored step. Documents written
// before the marker existed leave it nil.
type stepWire struct {
	*Step
	DefaultName *bool `json:"defaultName,omitempty"`
}

// MarshalJSON writes steps as {"step1": ..., "step2": ...} in position order.
// encoding/json would sort map keys lexically and put step10 before step2.
func (s Settings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, step := range s.Steps {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(StepKey(i + 1))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		out := *step
		out.Name = step.DisplayName(i + 1)
		defaultName := step.Name == ""
		data, err := json.Marshal(stepWire{Step: &out, DefaultName: &defaultName})
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	return json.Marshal(settingsWire{
		URL:            s.URL,
		Background:     s.Background,
		Credentialless: s.Credentialless,
		PageTitle:      s.PageTitle,
		Steps:          buf.Bytes(),
		NextID:         s.NextID,
	})
}

// UnmarshalJSON reads steps from "stepN" keys ordered by N. Keys that are not
// of that form are ignored. A step marked as default-named loads with an
// empty Name so it keeps following its position. Unmarked steps are
// default-named when their name matches their position.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var w struct {
		URL            string                     `json:"url"`
		Background     Background                 `json:"background"`
		Credentialless bool                       `json:"credentialless"`
		PageTitle      string                     `json:"pageTitle"`
		Steps          map[string]json.RawMessage `json:"steps"`
		NextID         StepID                     `json:"nextId"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	type keyed struct {
		pos int
		raw json.RawMessage
	}
	var ordered []keyed
	for key, raw := range w.Steps {
		pos, ok := ParseStepKey(key)
		if !ok {
			continue
		}
		ordered = append(ordered, keyed{pos: pos, raw: raw})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].pos < ordered[j].pos })

	steps := make([]*Step, 0, len(ordered))
	for _, k := range ordered {
		var step Step
		sw := stepWire{Step: &step}
		if err := json.Unmarshal(k.raw, &sw); err != nil {
			return err
		}
		switch {
		case sw.DefaultName != nil:
			if *sw.DefaultName {
				step.Name = ""
			}
		case step.Name == DefaultStepName(len(steps)+1):
			step.Name = ""
		}
		steps = append(steps, &step)
	}

	*s = Settings{
		URL:            w.URL,
		Background:     w.Background,
		Credentialless: w.Credentialless,
		PageTitle:      w.PageTitle,
		Steps:          steps,
		NextID:         w.NextID,
	}
	return nil
}

// Encode returns the compact JSON encoding of the document.
func Encode(s *Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, NewParseError("failed to encode settings", err)
	}
	return data, nil
}

// Decode parses a stored document and normalizes it.
func Decode(data []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, NewParseError("failed to parse settings", err)
	}
	Normalize(&s)
	return &s, nil
}

// Pretty re-indents a JSON document with two spaces.
func Pretty(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, NewParseError("stored content is not valid JSON", err)
	}
	return buf.Bytes(), nil
}
