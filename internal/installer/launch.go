package installer

import (
	"context"
	"path/filepath"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/platform"
)

// pathFunc resolves a program location once the environment is known.
type pathFunc func(env *catalog.Env) string

func localProgram(dir, exe string) pathFunc {
	return func(env *catalog.Env) string { return env.Paths.LocalProgram(dir, exe) }
}

func localData(dir, exe string) pathFunc {
	return func(env *catalog.Env) string { return filepath.Join(env.Paths.LocalData(dir), exe) }
}

func programFilesX86(parts ...string) pathFunc {
	return func(env *catalog.Env) string {
		return filepath.Join(append([]string{env.Paths.ProgramFilesX86}, parts...)...)
	}
}

func packageData(id string, parts ...string) pathFunc {
	return func(env *catalog.Env) string {
		return filepath.Join(append([]string{env.Paths.Data, id}, parts...)...)
	}
}

// start spawns the program and returns without waiting for it.
func start(path pathFunc) catalog.LaunchFunc {
	return func(ctx context.Context, env *catalog.Env) error {
		return env.Runner.Start(platform.Command{Path: path(env)})
	}
}

// startInDir spawns the program with its own directory as the working directory.
// Some programs write logs next to themselves relative to the cwd.
func startInDir(path pathFunc) catalog.LaunchFunc {
	return func(ctx context.Context, env *catalog.Env) error {
		p := path(env)
		return env.Runner.Start(platform.Command{Path: p, Dir: filepath.Dir(p)})
	}
}

// startElevated spawns the program as administrator.
func startElevated(path pathFunc, wait bool) catalog.LaunchFunc {
	return func(ctx context.Context, env *catalog.Env) error {
		return env.Runner.Elevated(ctx, path(env), nil, wait)
	}
}

// openURL opens a web page in the default browser.
func openURL(url string) catalog.LaunchFunc {
	return func(ctx context.Context, env *catalog.Env) error {
		return env.Runner.OpenURL(ctx, url)
	}
}
