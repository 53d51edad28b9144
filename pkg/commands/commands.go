// Package commands provides high-level command implementations for sweep.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the rule engine.
//
// Each command is implemented in its own subdirectory:
//   - run/   - RunRules: load rule files and apply them to a directory
//   - check/ - CheckFiles: validate rule files without touching anything
//
// This file re-exports the command functions for the CLI.
package commands

import (
	"github.com/arthur-debert/sweep/pkg/commands/check"
	"github.com/arthur-debert/sweep/pkg/commands/run"
	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/rules"
)

// RunOptions defines the options for RunRules.
type RunOptions = run.Options

// RunResult reports what every rule did.
type RunResult = run.Result

// RunRules applies rule files to a target directory.
func RunRules(opts RunOptions) (*RunResult, error) {
	return run.RunRules(opts)
}

// CheckOptions defines the options for CheckFiles.
type CheckOptions = check.Options

// CheckResult lists every rule of every checked file.
type CheckResult = check.Result

// CheckFiles parses rule files and reports their validity.
func CheckFiles(opts CheckOptions) (*CheckResult, error) {
	return check.CheckFiles(opts)
}

// DiscoverRules finds the rule file of dir on the real filesystem.
func DiscoverRules(dir, ext string) (string, error) {
	return rules.DiscoverConfiguration(filesystem.NewOS(), dir, ext)
}
