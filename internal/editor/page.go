package editor

import (
	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
	"go.uber.org/zap"
)

// SetURL sets the framed page URL.
func SetURL(st State, raw string) (State, error) {
	if err := settings.ValidateURL(raw); err != nil {
		return st, err
	}
	next := st.clone()
	next.Settings.URL = raw
	logging.Debug("Framed URL changed", zap.String("url", raw))
	return next, nil
}

// SetBackground sets the decoy background.
func SetBackground(st State, b settings.Background) (State, error) {
	if err := settings.ValidateBackground(b); err != nil {
		return st, err
	}
	next := st.clone()
	next.Settings.Background = b
	return next, nil
}

// SetCredentialless sets whether the frame is loaded credentialless.
func SetCredentialless(st State, on bool) State {
	next := st.clone()
	next.Settings.Credentialless = on
	return next
}

// SetPageTitle sets the demonstration page title. Markup is stripped; an
// empty title restores the default.
func SetPageTitle(st State, title string) State {
	next := st.clone()
	clean := settings.CleanText(title)
	if clean == settings.DefaultPageTitle {
		clean = ""
	}
	next.Settings.PageTitle = clean
	return next
}
