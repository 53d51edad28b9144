package types

// RunMode selects how rules are applied. DryRun and Interactive are
// independent; when both are set the user is still prompted and a "yes"
// only announces the simulated action.
type RunMode struct {
	// DryRun describes actions without touching the filesystem
	DryRun bool

	// Interactive asks for confirmation before each matched file
	Interactive bool

	// AllMatches applies a rule to every matching file instead of
	// stopping after the first one
	AllMatches bool
}

// String renders the mode for logs
func (m RunMode) String() string {
	switch {
	case m.Interactive && m.DryRun:
		return "interactive-dry-run"
	case m.Interactive:
		return "interactive"
	case m.DryRun:
		return "dry-run"
	}
	return "normal"
}
