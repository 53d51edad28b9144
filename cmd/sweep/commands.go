package sweep

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/sweep/internal/version"
	"github.com/arthur-debert/sweep/pkg/cobrax/topics"
	"github.com/arthur-debert/sweep/pkg/commands"
	"github.com/arthur-debert/sweep/pkg/config"
	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/ui"
	"github.com/arthur-debert/sweep/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagSettings maps the flags that shadow a setting to its dotted key
var flagSettings = map[string]string{
	"dry-run":     "run.dry_run",
	"interactive": "run.interactive",
	"all":         "run.all_matches",
	"paths":       "paths.style",
	"extension":   "rules.extension",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	// Initialize custom template formatting
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   "sweep",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		Version:           version.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().String("config", "", "Settings file to read instead of "+paths.SettingsPath())
	rootCmd.PersistentFlags().String("paths", "", MsgFlagPaths)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Commands:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg(MsgNoTopicsLoaded)
	}

	return rootCmd
}

func newRunCmd() *cobra.Command {
	var (
		dir   string
		files []string
	)

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			pathStyle, err := cfg.PathStyle()
			if err != nil {
				return err
			}
			targetDir, err := paths.ExpandHome(dir)
			if err != nil {
				return err
			}
			ruleFiles, err := expandAll(files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var confirmer confirmations.Confirmer
			if cfg.Run.Interactive {
				confirmer = confirmations.NewConsoleConfirmer(cmd.InOrStdin(), out)
			}
			result, err := commands.RunRules(commands.RunOptions{
				Dir:       targetDir,
				Files:     ruleFiles,
				Extension: cfg.Rules.Extension,
				Mode:      cfg.Mode(),
				Paths:     pathStyle,
				Printer:   style.NewPrinter(out, colorEnabled(cmd)),
				Confirmer: confirmer,
			})
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrRunRules)
			}

			if failed := result.Failed(); failed > 0 {
				return errors.Newf(errors.ErrRuleInvalid, MsgRulesFailed, failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "c", ".", MsgFlagDir)
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, MsgFlagFile)
	cmd.Flags().BoolP("dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolP("interactive", "i", false, MsgFlagInteractive)
	cmd.Flags().BoolP("all", "a", false, MsgFlagAll)
	cmd.Flags().String("extension", "", MsgFlagExtension)

	return cmd
}

func newCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "check [FILE...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			if _, err := loadSettings(cmd); err != nil {
				return err
			}

			files, err := expandAll(args)
			if err != nil {
				return err
			}
			opts := commands.CheckOptions{Files: files}
			if len(opts.Files) == 0 {
				found, err := discoverRules()
				if err != nil {
					return err
				}
				opts.Files = []string{found}
			}

			renderer := ui.NewRenderer(outputFormat, cmd.OutOrStdout(), colorEnabled(cmd))
			result, err := commands.CheckFiles(opts)
			if err != nil {
				err = errors.Wrap(err, errors.GetErrorCode(err), MsgErrCheckRules)
				// Scripts read the failure from the report itself
				if outputFormat != ui.FormatText {
					_ = renderer.RenderError(err)
				}
				return err
			}

			if err := renderer.RenderResult(result); err != nil {
				return err
			}

			if invalid := result.Invalid(); invalid > 0 {
				return errors.Newf(errors.ErrRuleInvalid, MsgRulesInvalid, invalid)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", MsgFlagFormat)

	return cmd
}

func newConfigCmd() *cobra.Command {
	var (
		template bool
		path     bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case path:
				_, err := fmt.Fprintln(out, paths.SettingsPath())
				return err
			case template:
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			content, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// loadSettings layers the settings sources, with the flags the user
// actually passed on top
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	for name, key := range flagSettings {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if flag.Value.Type() == "bool" {
			value, _ := flags.GetBool(name)
			overrides[key] = value
			continue
		}
		overrides[key] = flag.Value.String()
	}

	userFile, _ := flags.GetString("config")
	userFile, err := paths.ExpandHome(userFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.LoadOptions{
		UserFile:  userFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadSettings)
	}

	config.Initialize(cfg)
	log.Debug().Interface("overrides", overrides).Msg("Settings loaded")
	return cfg, nil
}

// colorEnabled combines the loaded settings with the --no-color flag and
// NO_COLOR
func colorEnabled(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	return config.Get().Output.Color && os.Getenv("NO_COLOR") == ""
}

func expandAll(names []string) ([]string, error) {
	expanded := make([]string, 0, len(names))
	for _, name := range names {
		path, err := paths.ExpandHome(name)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, path)
	}
	return expanded, nil
}

// discoverRules looks for a rule file in the working directory using the
// loaded extension setting
func discoverRules() (string, error) {
	return commands.DiscoverRules(".", config.Get().Rules.Extension)
}

func initTopics(rootCmd *cobra.Command) error {
	fsys, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		return err
	}

	var renderer topics.Renderer = topics.NewPlainMarkdownRenderer()
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	_, err = topics.Initialize(rootCmd, fsys, topics.Options{Renderer: renderer})
	return err
}
