package render

import "html/template"

// enforcedCSS keeps the decoy controls click-through while their overlays
// and the menu stay clickable. Only the visible control is displayed and
// dots beyond the configured total stay hidden.
const enforcedCSS = `
#button-container {
  position: absolute !important;
  top: 0 !important;
  left: 0 !important;
  width: 100% !important;
  height: 100% !important;
  pointer-events: none !important;
  z-index: 100 !important;
  box-sizing: border-box !important;
  overflow: visible !important;
  border-radius: 12px !important;
}

#button-container .button-overlay,
#button-container .green-overlay,
#button-container .fly-overlay {
  pointer-events: auto !important;
}

#normal-button,
#normal-button *,
#captcha-checkbox-button,
#captcha-checkbox-button *:not(.green-overlay),
#captcha-puzzle-button,
#captcha-puzzle-button *:not(.fly-overlay) {
  pointer-events: none !important;
}

#normal-button,
#captcha-checkbox-button,
#captcha-puzzle-button {
  position: absolute !important;
}

#captcha-puzzle-button {
  z-index: 150 !important;
  overflow: visible !important;
}

#captcha-puzzle-button .puzzle-container {
  position: relative;
  width: 500px;
  height: 610px;
  background-color: #ffffff;
  box-shadow: 0 0 10px rgba(0, 0, 0, 0.1);
  border-radius: 4px;
  overflow: visible !important;
}

#captcha-puzzle-button .main-image img.bg-1 {
  margin: 0 auto !important;
  display: block !important;
}

#captcha-puzzle-button .dot[data-visible="false"] {
  display: none !important;
}

.control[data-visible="false"] {
  display: none !important;
}

#menu,
#menu button,
#menu .dropdown-item {
  pointer-events: auto !important;
  z-index: 1000 !important;
}

#iframe-section {
  position: relative !important;
}
`

// EnforcedCSS returns the static rules that keep controls click-through,
// overlays clickable and hidden elements hidden.
func EnforcedCSS() template.CSS {
	return template.CSS(enforcedCSS)
}
