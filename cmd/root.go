package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"branchout/internal/catalog"
	"branchout/internal/checkout"
	"branchout/internal/config"
	"branchout/internal/git"
	"branchout/internal/logging"
	"branchout/internal/ui"
)

// exitCancelled mirrors the shell convention for interrupted programs.
const exitCancelled = 130

var (
	localOnly  bool
	remoteOnly bool
	themeFlag  string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "branchout",
	Short: "Interactive git branch checkout",
	Long:  `branchout - pick a local or remote branch from a filterable list and check it out`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&localOnly, "local-only", "l", false, "show only local branches")
	rootCmd.Flags().BoolVarP(&remoteOnly, "remote-only", "r", false, "show only remote branches")
	rootCmd.MarkFlagsMutuallyExclusive("local-only", "remote-only")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme (latte, frappe, macchiato, mocha)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func visibility() catalog.Visibility {
	switch {
	case localOnly:
		return catalog.LocalOnly
	case remoteOnly:
		return catalog.RemoteOnly
	default:
		return catalog.Both
	}
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	logger, closeLog := logging.New(cfg.Log.File, cfg.Log.Level)
	defer closeLog()

	client := git.NewClient()

	branches, err := client.ListBranches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "branchout: %v\n", err)
		return 1
	}
	logger.Info("listed branches", zap.Int("count", len(branches)))

	cat, err := catalog.Build(branches, visibility())
	if err != nil {
		// An empty catalog is informational, not a failure dump.
		fmt.Fprintf(os.Stderr, "branchout: %v\n", err)
		return 1
	}

	p := tea.NewProgram(
		ui.NewModel(cat, ui.NewStyles(cfg.Theme)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		// The terminal is already restored by the time Run returns.
		if errors.Is(err, tea.ErrInterrupted) {
			logger.Info("session interrupted")
			return exitCancelled
		}
		fmt.Fprintf(os.Stderr, "branchout: %v\n", err)
		return 1
	}

	outcome := final.(ui.Model).Outcome()
	if outcome.Aborted || outcome.Branch == nil {
		logger.Info("session aborted")
		return exitCancelled
	}
	logger.Info("branch confirmed",
		zap.String("branch", outcome.Branch.Ref()),
		zap.Bool("remote", outcome.Branch.Remote != ""))

	result, err := checkout.Resolve(client, *outcome.Branch)
	if err != nil {
		logger.Error("checkout failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "branchout: %v\n", err)
		return 1
	}

	if result.Created {
		fmt.Printf("Switched to a new branch '%s' tracking '%s'\n", result.Branch, outcome.Branch.Ref())
	} else {
		fmt.Printf("Switched to branch '%s'\n", result.Branch)
	}
	logger.Info("checkout complete",
		zap.String("branch", result.Branch),
		zap.Bool("created", result.Created))
	return 0
}
