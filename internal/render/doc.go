// Package render turns settings into what the demonstration page shows.
//
// Preview computes, for the current step, the single visible control with
// its position and style and the frame dimensions. Page writes the complete
// standalone HTML document: the framed target, the decoy background, the
// three control widgets (only one displayed at a time) and a small inline
// driver that walks through the steps in the browser.
//
// Control positions are percentages of the frame area and every control is
// centred on its position with translate(-50%, -50%). The puzzle control
// additionally draws a fixed-size sprite scene (a fly and three cows at
// pixel offsets) and up to four indicator dots.
//
// The pointer-event and display rules the page depends on are emitted once
// as declarative CSS by EnforcedCSS.
package render
