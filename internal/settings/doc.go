// Package settings defines the document edited by clickme: the demonstration
// page settings and its ordered list of steps.
//
// A Settings value holds the framed URL, the background choice, the
// credentialless flag, the page title and the steps. Each Step bundles the
// embedded frame size, at most one interactive control, an optional script
// payload and the timeout before the sequence advances.
//
// # Wire Format
//
// The document is stored as a single JSON object. Steps are written as an
// object keyed by display position ("step1", "step2", ...) in numeric order,
// so exported documents stay readable by tools that only know the legacy
// string-valued format:
//
//	{
//	  "url": "https://example.com",
//	  "background": "social-media",
//	  "credentialless": true,
//	  "steps": {
//	    "step1": {
//	      "id": 1,
//	      "name": "Step 1",
//	      "defaultName": true,
//	      "iframe": {"width": 800, "height": 600},
//	      "button": "normal",
//	      "buttonSettings": {"type": "normal", "left": 20, "top": 45, ...},
//	      "timeout": 1000
//	    }
//	  },
//	  "nextId": 2
//	}
//
// Numeric fields decode from JSON numbers and from numeric strings, since
// older documents stored every number as a string. Each step also carries a
// stable "id" that survives reordering and deletion; the "stepN" key and the
// default "Step N" name are derived from position. "defaultName" marks steps
// whose name follows their position, and "nextId" keeps IDs of removed steps
// from being handed out again.
//
// Control positions are percentages. A stored 0 is a real position; only a
// missing, empty or null value falls back to the centre.
//
// # Control Types
//
// Three mutually exclusive control types exist:
//   - normal: a plain button with size, text and colour
//   - captcha-checkbox: a checkbox-style widget positioned on the frame
//   - captcha-puzzle: a puzzle widget with decorative sprites and up to four
//     indicator dots
//
// Switching a step's control type keeps the previous type's sub-settings in
// Step.Retained so switching back restores them.
//
// # Validation
//
// Validation helpers follow the ValidateX pattern and return *Error values of
// type ErrTypeValidation. LintScript compiles step scripts and reports syntax
// problems without blocking edits.
package settings
