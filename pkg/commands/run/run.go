package run

import (
	"github.com/arthur-debert/sweep/pkg/executor"
	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/arthur-debert/sweep/pkg/ui/confirmations"
)

// Options defines the options for the RunRules command.
type Options struct {
	// Dir is the directory the rules act on; "." when empty.
	Dir string

	// Files are the rule files, applied in order. When empty a rule file is
	// discovered in SearchDir.
	Files []string

	// SearchDir is where discovery looks; "." when empty.
	SearchDir string

	// Extension marks discoverable rule files; rules.DefaultExtension when empty.
	Extension string

	Mode  types.RunMode
	Paths paths.Style

	FS        types.FS
	Printer   *style.Printer
	Confirmer confirmations.Confirmer
}

// Configuration holds the outcome of the rules of one file
type Configuration struct {
	Filename string
	Results  []executor.Result
}

// Result reports every rule applied during a run
type Result struct {
	Dir            string
	Mode           types.RunMode
	Configurations []Configuration
}

// Failed counts the rules that were invalid or whose action failed
func (r *Result) Failed() int {
	n := 0
	for _, c := range r.Configurations {
		for _, res := range c.Results {
			if !res.OK() {
				n++
			}
		}
	}
	return n
}

// RunRules loads every rule file then applies its rules in order, one file
// after the other, against the same directory. A rule sees the effects of
// the rules run before it.
func RunRules(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.run")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	log.Debug().
		Str("command", "RunRules").
		Str("dir", dir).
		Str("mode", opts.Mode.String()).
		Strs("files", opts.Files).
		Msg("Executing command")

	files := opts.Files
	if len(files) == 0 {
		searchDir := opts.SearchDir
		if searchDir == "" {
			searchDir = "."
		}
		found, err := rules.DiscoverConfiguration(fs, searchDir, opts.Extension)
		if err != nil {
			return nil, err
		}
		log.Info().Str("file", found).Msg("Discovered rule file")
		files = []string{found}
	}

	// All files are read before any rule runs: a missing file aborts the
	// run with the directory untouched
	configs := make([]*rules.Configuration, 0, len(files))
	for _, file := range files {
		config, err := rules.LoadConfiguration(fs, file)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	engine := executor.New(executor.Options{
		FS:        fs,
		Paths:     opts.Paths,
		Printer:   opts.Printer,
		Confirmer: opts.Confirmer,
	})

	result := &Result{Dir: dir, Mode: opts.Mode}
	for _, config := range configs {
		entry := Configuration{Filename: config.Filename}
		for _, rule := range config.Rules {
			res, err := engine.Execute(rule, dir, opts.Mode)
			entry.Results = append(entry.Results, res)
			if err != nil {
				result.Configurations = append(result.Configurations, entry)
				return result, err
			}
		}
		result.Configurations = append(result.Configurations, entry)
	}

	log.Info().
		Str("command", "RunRules").
		Int("files", len(configs)).
		Int("failed", result.Failed()).
		Msg("Command finished")
	return result, nil
}
