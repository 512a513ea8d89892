package installer

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"worbots-setup/internal/catalog"
)

var pathPlannerSource = githubSource{org: "mjansen4857", repo: "pathplanner", patterns: []string{"Windows.zip"}}

// installPathPlanner unpacks the portable build into the data directory;
// PathPlanner ships no installer for Windows.
func installPathPlanner(ctx context.Context, env *catalog.Env) (string, error) {
	rel, asset, err := findAsset(ctx, env, pathPlannerSource)
	if err != nil {
		return "", err
	}
	archive, err := download(ctx, env, "pathplanner", asset.DownloadURL, "pathplanner.zip")
	if err != nil {
		return "", err
	}

	env.Out.Progress("Extracting archive")
	if err := ExtractArchive(archive, filepath.Join(filepath.Dir(archive), "extracted"), true); err != nil {
		return "", errors.Wrap(err, "failed to extract archive")
	}
	return rel.Tag, nil
}

var pathPlannerPath = packageData("pathplanner", "extracted", "pathplanner.exe")
