package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"worbots-setup/internal/logger"
)

// Command is a program to spawn.
type Command struct {
	Path string
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Path + " " + strings.Join(c.Args, " "))
}

// Runner spawns processes on behalf of install and launch routines.
type Runner interface {
	// Run spawns c and waits for it to exit.
	Run(ctx context.Context, c Command) error
	// Start spawns c and returns without waiting.
	Start(c Command) error
	// Output runs c to completion and returns its stdout.
	Output(ctx context.Context, c Command) (string, error)
	// Elevated runs path with administrator rights, prompting through UAC
	// when the current process is not already elevated.
	Elevated(ctx context.Context, path string, args []string, wait bool) error
	// OpenURL opens url in the default browser.
	OpenURL(ctx context.Context, url string) error
}

// ProcessError is a child process that failed to spawn or exited unsuccessfully.
type ProcessError struct {
	Path     string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s exited with code %d", e.Path, e.ExitCode)
	}
	return fmt.Sprintf("failed to run %s: %v", e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExecRunner is the os/exec implementation of Runner.
// Processes are not tied to ctx: once an installer starts it runs to completion.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := command(c)
	logger.Debug("[DEBUG] Running command: %s\n", c)
	if err := cmd.Run(); err != nil {
		return processError(c.Path, err)
	}
	return nil
}

func (ExecRunner) Start(c Command) error {
	cmd := command(c)
	logger.Debug("[DEBUG] Starting command: %s\n", c)
	if err := cmd.Start(); err != nil {
		return processError(c.Path, err)
	}
	// Reap the child in the background; launched programs outlive the action.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	cmd := command(c)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	logger.Debug("[DEBUG] Running command: %s\n", c)
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			logger.Debug("[DEBUG] %s stderr: %s\n", c.Path, stderr.String())
		}
		return "", processError(c.Path, err)
	}
	return string(out), nil
}

func (r ExecRunner) Elevated(ctx context.Context, path string, args []string, wait bool) error {
	c := Command{Path: path, Args: args}
	if !IsElevated() {
		c = ElevatedCommand(path, args, wait)
	}
	if wait {
		return r.Run(ctx, c)
	}
	return r.Start(c)
}

func (r ExecRunner) OpenURL(ctx context.Context, url string) error {
	return r.Run(ctx, Command{Path: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}})
}

// ElevatedCommand builds the PowerShell trampoline that asks UAC to start path
// as administrator. With wait the trampoline blocks until the program exits.
func ElevatedCommand(path string, args []string, wait bool) Command {
	script := "Start-Process -FilePath " + psQuote(path)
	if len(args) > 0 {
		quoted := make([]string, len(args))
		for i, a := range args {
			quoted[i] = psQuote(a)
		}
		script += " -ArgumentList " + strings.Join(quoted, ",")
	}
	script += " -Verb RunAs"
	if wait {
		script += " -Wait"
	}
	return Command{
		Path: "powershell.exe",
		Args: []string{"-NoProfile", "-NonInteractive", "-Command", script},
	}
}

// psQuote wraps s in single quotes, doubling any embedded ones.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func command(c Command) *exec.Cmd {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	return cmd
}

func processError(path string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ProcessError{Path: path, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &ProcessError{Path: path, Err: err}
}
