package settings

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// CleanText strips markup from a user-supplied label (step name, page title)
// and collapses whitespace. The page template escapes on output; this keeps
// stored names readable in the terminal.
func CleanText(s string) string {
	cleaned := html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}
