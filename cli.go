package renamer

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Recursive   bool
	IncludeDirs bool
	Editor      string
	DryRun      bool
	NoNvim      bool
	Verbose     int
	Completion  string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "renamer [pattern]",
	Short: "Bulk rename or delete files by editing their names in your editor.",
	Long: `Collect file names into a listing, open it in your editor, and apply the
edits back to the filesystem. Change a line to rename that file, prefix it
with # to delete it, leave it untouched to keep it.

Example: renamer '\.jpe?g$'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		setupLogging(cfg.Verbose)

		pattern := ".*"
		if len(args) > 0 {
			pattern = args[0]
		}

		opts := &Options{
			Pattern:     pattern,
			Recursive:   cfg.Recursive,
			IncludeDirs: cfg.IncludeDirs,
			Editor:      cfg.Editor,
			DryRun:      cfg.DryRun,
			NoNvim:      cfg.NoNvim,
		}

		app, err := NewApp(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		summary, err := app.Execute()
		if err != nil {
			return err
		}

		fmt.Print(FormatSummary(summary))
		return nil
	},
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().BoolVarP(&cfg.Recursive, "recursive", "r", false, "Walk directories recursively")
	rootCmd.Flags().BoolVar(&cfg.IncludeDirs, "include-dirs", false, "List directories too")
	rootCmd.Flags().StringVar(&cfg.Editor, "editor", "", "Editor command for this run")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Print planned actions without applying them")
	rootCmd.Flags().BoolVar(&cfg.NoNvim, "no-nvim", false, "Never attach to a running nvim instance")
	rootCmd.Flags().CountVarP(&cfg.Verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
