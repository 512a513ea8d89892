package installer

import (
	"path/filepath"

	"worbots-setup/internal/catalog"
)

const (
	wpilibDocsURL    = "https://docs.wpilib.org/en/stable/index.html"
	worbotsGitHubURL = "https://github.com/Worthington-Robotics"
	gameManualURL    = "https://firstfrc.blob.core.windows.net/frc2023/Manual/2023FRCGameManual.pdf"
)

func taskManagerPath(env *catalog.Env) string {
	return filepath.Join(env.Paths.System, "Taskmgr.exe")
}
