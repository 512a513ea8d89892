// Package installer holds the install and launch routines of every package
// the tool ships with, plus the config-driven custom packages.
package installer

import (
	"github.com/pkg/errors"

	"worbots-setup/internal/assets"
	"worbots-setup/internal/catalog"
	"worbots-setup/internal/config"
)

func meta(id, name, desc string, icon []byte) catalog.Meta {
	return catalog.Meta{ID: id, DisplayName: name, Description: desc, Icon: icon}
}

// Builtin returns the built-in packages in display order.
func Builtin() []catalog.Descriptor {
	return []catalog.Descriptor{
		catalog.Standalone(meta("advantagescope", "AdvantageScope", "A viewer for live robot telemetry and log files", assets.AdvantageScopeIcon),
			installAdvantageScope, start(advantageScopePath)),
		catalog.Standalone(meta("cachecad", "CacheCAD", "A file management interface for Google Drive", nil),
			installCacheCAD, startInDir(cacheCADPath)),
		catalog.Standalone(meta("phoenix", "CTRE Phoenix", "Tools for working with CTRE devices", assets.CTREIcon),
			installPhoenix, nil),
		catalog.Child(meta("ds_log_viewer", "DS Log File Viewer", "A tool to view Driver Station log files", assets.NIIcon),
			"game_tools", start(dsLogViewerPath)),
		catalog.Standalone(meta("etcher", "Etcher", "Flashes OS images to drives. Used to flash the roboRIO 2", nil),
			installEtcher, start(etcherPath)),
		catalog.Child(meta("driver_station", "FRC Driver Station", "The station for drivers used to control the robot", assets.NIIcon),
			"game_tools", startElevated(driverStationPath, false)),
		catalog.Shortcut(meta("game_manual", "FRC Game Manual", "Official manual for the FRC game", nil),
			openURL(gameManualURL)),
		catalog.Standalone(meta("game_tools", "FRC Game Tools", "Official tools for the robot, including the radio utility and driver station", assets.NIIcon),
			installGameTools, nil),
		catalog.Standalone(meta("github_desktop", "GitHub Desktop", "Desktop app for GitHub, a website used to host robot code", nil),
			installGitHubDesktop, start(gitHubDesktopPath)),
		catalog.Child(meta("glass", "Glass", "Dashboard for drivers and simulation", assets.WPILibIcon),
			"wpilib", wpilibTool("Glass.vbs")),
		catalog.Standalone(meta("grip", "GRIP", "A graphical vision pipeline editor", nil),
			installGRIP, start(gripPath)),
		catalog.Standalone(meta("limelight_finder", "Limelight Finder", "Tool to find Limelights on the robot network", assets.LimelightIcon),
			installLimelightFinder, start(limelightFinderPath)),
		catalog.Standalone(meta("pathplanner", "PathPlanner", "Autonomous path editor and generator", nil),
			installPathPlanner, start(pathPlannerPath)),
		catalog.Child(meta("pathweaver", "PathWeaver", "The WPILib autonomous path editor", assets.WPILibIcon),
			"wpilib", wpilibTool("PathWeaver.vbs")),
		catalog.Child(meta("phoenix_tuner", "Phoenix Tuner", "Allows viewing, debugging, and configuration of devices on a CAN network", assets.CTREIcon),
			"phoenix", start(phoenixTunerPath)),
		catalog.Child(meta("radio_utility", "FRC Radio Configuration Utility", "Flash and configure radio devices", assets.NIIcon),
			"game_tools", startElevated(radioUtilityPath, false)),
		catalog.Standalone(meta("rev_client", "REV Hardware Client", "Updater and debugger for REV devices", assets.REVIcon),
			installREV, start(revClientPath)),
		catalog.Child(meta("rio_imaging_tool", "roboRIO Imaging Tool", "Flash and update the roboRIO", assets.NIIcon),
			"game_tools", start(rioImagingPath)),
		catalog.Shortcut(meta("task_manager", "Task Manager", "The Windows Task Manager", nil),
			startElevated(taskManagerPath, true)),
		catalog.Child(meta("team_number_setter", "roboRIO Team Number Setter", "Simple tool used to set the team number on a roboRIO", assets.WPILibIcon),
			"wpilib", wpilibTool("roboRIOTeamNumberSetter.vbs")),
		catalog.Child(meta("shuffleboard", "Shuffleboard", "An interactive and customizable robot dashboard", assets.WPILibIcon),
			"wpilib", wpilibTool("Shuffleboard.vbs")),
		catalog.Shortcut(meta("worbots_github", "WorBots GitHub", "GitHub organization for the WorBots team", nil),
			openURL(worbotsGitHubURL)),
		catalog.Standalone(meta("wpilib", "WPILib", "The official tools for developing FRC robots", assets.WPILibIcon),
			installWPILib, nil),
		catalog.Child(meta("data_log_tool", "WPILib Data Log Tool", "Viewer for robot log files", assets.WPILibIcon),
			"wpilib", wpilibTool("DataLogTool.vbs")),
		catalog.Shortcut(meta("wpilib_docs", "WPILib Docs", "Documentation for WPILib and developing FRC robots", assets.WPILibIcon),
			openURL(wpilibDocsURL)),
		catalog.Child(meta("outline_viewer", "WPILib Outline Viewer", "A simple NetworkTables editor", assets.WPILibIcon),
			"wpilib", wpilibTool("OutlineViewer.vbs")),
		catalog.Child(meta("robotbuilder", "WPILib RobotBuilder", "Tool for generating WPILib robot projects", assets.WPILibIcon),
			"wpilib", wpilibTool("RobotBuilder.vbs")),
		catalog.Child(meta("sysid", "WPILib SysId", "A tool for analyzing and tuning robot control systems", assets.WPILibIcon),
			"wpilib", wpilibTool("SysId.vbs")),
		catalog.Child(meta("vscode", "WPILib VSCode", "Microsoft's code editor configured for robot development", assets.WPILibIcon),
			"wpilib", launchVSCode),
	}
}

// NewRegistry builds the registry from the built-in packages followed by the
// custom packages in cfg.
func NewRegistry(cfg *config.Config) (*catalog.Registry, error) {
	descriptors := Builtin()
	for _, p := range cfg.Custom {
		descriptors = append(descriptors, Custom(p))
	}
	r, err := catalog.NewRegistry(descriptors...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid package table")
	}
	return r, nil
}
