package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"worbots-setup/internal/log"
	"worbots-setup/internal/logger"
	"worbots-setup/internal/ui"
)

// logFileName is written in the data directory while the window is open.
const logFileName = "worbots-setup.log"

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Open the graphical application",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(s.env.Paths.Data, 0755); err != nil {
			return errors.Wrapf(err, "failed to create data directory %s", s.env.Paths.Data)
		}
		logPath := filepath.Join(s.env.Paths.Data, logFileName)
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "failed to open log file %s", logPath)
		}
		defer f.Close()

		logger.Info("[INFO] Starting app, logging to %s\n", logPath)
		// A windowed process has no console once it is detached.
		log.Configure(f, debug)
		logger.Silence(f)

		return ui.Run(commandContext(cmd), s.reg, *s.env, s.cfg.Workers)
	},
}

func init() {
	rootCmd.AddCommand(appCmd)
}
