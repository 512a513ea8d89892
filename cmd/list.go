package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/state"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every package and what can be done with it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		printPackages(cmd.OutOrStdout(), s.reg, s.env.State)
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// printPackages renders the registry as a table in display order.
func printPackages(w io.Writer, reg *catalog.Registry, st *state.Store) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("ID", "Name", "Install", "Launch", "Part of", "Installed")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)

	for _, d := range reg.All() {
		parent, _ := d.Parent()
		installed := ""
		if ps, ok := st.Get(d.ID); ok {
			installed = ps.Version
			if installed == "" {
				installed = ps.InstalledAt.Local().Format("2006-01-02")
			}
		}
		tbl.AddRow(d.ID, d.DisplayName, yesNo(d.Installable()), yesNo(d.Launchable()), parent, installed)
	}
	tbl.Print()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
