package cmd

import (
	"github.com/spf13/cobra"

	"worbots-setup/internal/installer"
	"worbots-setup/internal/logger"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [package]...",
	Short: "Delete downloaded installers and forget installed packages",
	Long: `Clean removes what this tool downloaded or extracted for the given packages,
or for every package when none are named, and forgets them in the state file.
Programs an installer put elsewhere stay installed; remove those through Windows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		for _, id := range args {
			if _, recorded := s.env.State.Get(id); recorded {
				continue
			}
			if _, err := s.reg.Lookup(id); err != nil {
				return err
			}
		}

		removed, err := installer.Clean(s.env.Paths, s.env.State, args)
		for _, id := range removed {
			logger.Info("[INFO] Cleaned %s\n", id)
		}
		if err != nil {
			return err
		}
		if len(removed) == 0 {
			logger.Info("[INFO] Nothing to clean\n")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
