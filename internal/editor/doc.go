// Package editor implements the editing operations on a settings document.
//
// The editor state is an explicit value: every operation takes a State and
// returns a new one, leaving its argument untouched. Steps are addressed by
// stable IDs that survive removals and reordering; the 1-based display
// number and the "stepN" storage key are derived from position.
//
//	st := editor.NewState(store.Load())
//	st = editor.AddSeparator(st)
//	st, err := editor.AssignControl(st, st.CurrentStep().ID, settings.ControlCaptchaPuzzle)
//
// A Session binds a State to a store.Store and saves after every successful
// update, which is how both the CLI and the interactive editor drive it.
//
// Switching a step's control type keeps the previous type's values in the
// step's retained settings, so switching back restores them.
package editor
