package cmd

import (
	"github.com/spf13/cobra"

	"worbots-setup/internal/logger"
	"worbots-setup/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose packages to install from a checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		defaults := make(map[string]bool)
		for _, id := range s.cfg.InstallAll {
			defaults[id] = true
		}

		var items []picker.Item
		for _, d := range s.reg.All() {
			if !d.Installable() {
				continue
			}
			item := picker.Item{ID: d.ID, Label: d.DisplayName, Description: d.Description}
			if ps, ok := s.env.State.Get(d.ID); ok {
				item.Note = "installed"
				if ps.Version != "" {
					item.Note += " " + ps.Version
				}
			} else {
				item.Selected = defaults[d.ID]
			}
			items = append(items, item)
		}

		ids, err := picker.Run("Select packages to install", items)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			logger.Info("[INFO] Nothing selected\n")
			return nil
		}
		return runInstall(cmd, s, ids)
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
