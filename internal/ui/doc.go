// Package ui provides terminal output components for the clickme CLI.
//
// This package uses Lipgloss to render polished terminal output for the
// non-interactive commands. Unlike the interactive editor in package tui,
// these components follow a "print once and exit" pattern.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success/failure/warning boxes with details and troubleshooting
//   - StepList: The step sequence with the displayed step marked and a
//     position bar
//   - CodeBox: Framed raw output such as exported JSON
//   - Confirm: A prompt guarding destructive operations
//
// # Usage Pattern
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Render", "clickme render", []ui.Detail{{Key: "Output", Value: path}})
//	p.PrintSuccess("Page written", []ui.Detail{{Key: "Steps", Value: "3"}})
//
// # Logging Integration
//
// Logging is controlled via the CLICKME_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent, allowing the curated UI output
// to be displayed cleanly.
package ui
