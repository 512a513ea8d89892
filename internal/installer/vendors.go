package installer

// Packages whose install is a plain "download the installer and run it".

var (
	installPhoenix = githubInstaller("phoenix",
		githubSource{org: "CrossTheRoadElec", repo: "Phoenix-Releases", patterns: []string{".exe"}},
		"Click next/I agree on every option")
	installGRIP = githubInstaller("grip",
		githubSource{org: "WPIRoboticsProjects", repo: "GRIP", patterns: []string{"x64.exe"}}, "")
	installEtcher = githubInstaller("etcher",
		githubSource{org: "balena-io", repo: "etcher", patterns: []string{".exe", "Setup"}}, "")

	installCacheCAD        = urlInstaller("cachecad", cacheCADURL)
	installGitHubDesktop   = urlInstaller("github_desktop", "https://central.github.com/deployments/desktop/desktop/latest/win32")
	installLimelightFinder = urlInstaller("limelight_finder", "https://downloads.limelightvision.io/software/LimelightFinderSetup1_0_1.exe")
)

// CacheCAD is hosted on Google Drive; confirm=t skips the virus scan page.
const cacheCADURL = "https://drive.google.com/uc?export=download&id=1M0O8KoP2JmWFuwO7RJNRggehF6l53jJE&confirm=t&uuid=22ead10c-923a-4d7e-b1d5-17758bc282b2&at=AB6BwCDs19_YnorJcuXHkfS2yJIW:1698016272600"

var (
	advantageScopePath  = localProgram("advantagescope", "AdvantageScope.exe")
	etcherPath          = localProgram("balena-etcher", "balenaEtcher.exe")
	cacheCADPath        = localProgram("CacheCAD", "CacheCAD_GUI.exe")
	limelightFinderPath = localProgram("limelight-finder", "Limelight Finder.exe")
	gripPath            = localData("GRIP", "GRIP.exe")
	gitHubDesktopPath   = localData("GitHubDesktop", "GitHubDesktop.exe")
	phoenixTunerPath    = programFilesX86("CTRE", "Phoenix Tuner", "Phoenix Tuner.exe")
)
