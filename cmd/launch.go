package cmd

import (
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch <package>...",
	Short: "Launch one or more installed programs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		if _, err := s.reg.Resolve(args); err != nil {
			return err
		}
		summary := s.reg.LaunchMany(commandContext(cmd), s.env, args)
		return finishBatch(cmd.OutOrStdout(), summary, "launched")
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
}
