package installer

import (
	"context"

	"worbots-setup/internal/catalog"
)

// installGameTools runs NI's online installer for the season's game tools.
// The address changes every season so it lives in the config.
func installGameTools(ctx context.Context, env *catalog.Env) (string, error) {
	return urlInstaller("game_tools", env.Config.GameTools.URL)(ctx, env)
}

var (
	driverStationPath = programFilesX86("FRC Driver Station", "DriverStation.exe")
	dsLogViewerPath   = programFilesX86("FRC Driver Station", "DS_LogFileViewer.exe")
	radioUtilityPath  = programFilesX86("FRC Radio Configuration Utility", "FRC Radio Configuration Utility.exe")
	rioImagingPath    = programFilesX86("National Instruments", "LabVIEW 2020", "project", "roboRIO Tool", "roboRIO_ImagingTool.exe")
)
