package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/logger"
)

// skipInstalled makes install-all leave packages the state file already records.
var skipInstalled bool

var installCmd = &cobra.Command{
	Use:   "install <package>...",
	Short: "Install one or more packages",
	Long: `Install downloads each package's installer and runs it, one package at a time.
A failed package does not stop the others; the command exits non-zero if any failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return runInstall(cmd, s, args)
	},
}

var installAllCmd = &cobra.Command{
	Use:   "install-all",
	Short: "Install the standard set of packages (install_all in the config)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		ids := s.cfg.InstallAll
		if skipInstalled {
			ids = notInstalled(s.env, ids)
			if len(ids) == 0 {
				logger.Info("[INFO] Every package in install_all is already installed\n")
				return nil
			}
		}
		return runInstall(cmd, s, ids)
	},
}

func runInstall(cmd *cobra.Command, s *session, ids []string) error {
	if _, err := s.reg.Resolve(ids); err != nil {
		return err
	}
	summary := s.reg.InstallMany(commandContext(cmd), s.env, ids)
	return finishBatch(cmd.OutOrStdout(), summary, "installed")
}

// notInstalled drops the ids the state file records as installed.
func notInstalled(env *catalog.Env, ids []string) []string {
	var out []string
	for _, id := range ids {
		if ps, ok := env.State.Get(id); ok {
			logger.Info("[INFO] %s is already installed (%s). Skipping.\n", id, ps.Version)
			continue
		}
		out = append(out, id)
	}
	return out
}

// finishBatch prints the outcome of a batch and returns the first failure.
func finishBatch(w io.Writer, s catalog.Summary, verb string) error {
	failed := s.Failed()
	if len(failed) == 0 {
		_, _ = color.New(color.Bold, color.FgGreen).Fprintf(w, "All packages %s\n", verb)
		return nil
	}

	if len(s.Outcomes) > 1 {
		red := color.New(color.FgRed)
		_, _ = fmt.Fprintf(w, "%d of %d packages %s\n", len(s.Succeeded()), len(s.Outcomes), verb)
		for _, o := range failed {
			_, _ = red.Fprintf(w, "  %s: %v\n", o.ID, o.Err)
		}
	}
	return s.FirstError()
}

func init() {
	installAllCmd.Flags().BoolVar(&skipInstalled, "skip-installed", false, "Skip packages this tool has already installed")
	rootCmd.AddCommand(installCmd, installAllCmd)
}
