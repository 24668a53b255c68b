// Package tui implements the interactive terminal editor for clickme.
//
// The editor is built on Bubble Tea and follows the Elm architecture: every
// screen is a value model with Update and View, and the AppModel routes
// messages to the active screen.
//
// # Screens
//
//   - Editor: step list on the left, preview of the displayed step on the
//     right, status line and inline value editor underneath
//   - Export: the stored document, pretty-printed in a scrolling viewport,
//     with a key to copy it to the clipboard and clear storage
//
// Every edit goes through an editor.Session, so the document is saved after
// each successful change and a failed change leaves it untouched. Errors are
// shown on the status line.
//
// All screens use RenderApplicationContainer for the header and help footer.
//
// # Usage
//
//	session := editor.NewSession(st)
//	rng := rand.New(rand.NewPCG(seed1, seed2))
//	if err := tui.Run(session, editor.SystemClipboard, rng); err != nil {
//	    return err
//	}
package tui
