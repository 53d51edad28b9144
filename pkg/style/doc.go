// Package style renders sweep's console output: the colored status lines of
// a run (lipgloss, with termenv deciding the color profile of each writer)
// and pterm tables for reports.
package style
