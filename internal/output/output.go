// Package output reports install and launch progress to whoever is driving
// the action: the terminal for CLI commands or the details pane in the GUI.
package output

import (
	"bufio"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output is implemented by every front-end that runs package actions.
type Output interface {
	// Progress announces the step that is about to run.
	Progress(msg string)
	// Success reports a finished step.
	Success(msg string)
	// Instruction tells the user what to do in an external installer.
	Instruction(msg string)
	// ContinuePrompt blocks until the user confirms they are done.
	ContinuePrompt()
}

var (
	progressColor    = color.New(color.Bold)
	successColor     = color.New(color.Bold, color.FgGreen)
	instructionColor = color.New(color.Bold, color.FgYellow)
)

// Console writes colored messages to a terminal.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// NewConsole returns a Console bound to stdin and stdout.
func NewConsole() *Console {
	return &Console{In: os.Stdin, Out: color.Output}
}

func (c *Console) Progress(msg string) {
	_, _ = progressColor.Fprintf(c.Out, "%s...\n", msg)
}

func (c *Console) Success(msg string) {
	_, _ = successColor.Fprintln(c.Out, msg)
}

func (c *Console) Instruction(msg string) {
	_, _ = instructionColor.Fprintln(c.Out, msg)
}

// ContinuePrompt waits for a line on In. EOF counts as confirmation.
func (c *Console) ContinuePrompt() {
	_, _ = progressColor.Fprint(c.Out, "Press Enter to continue...")
	_, _ = bufio.NewReader(c.In).ReadString('\n')
	_, _ = io.WriteString(c.Out, "\n")
}

// Null discards everything. Useful for tests and scripted runs.
type Null struct{}

func (Null) Progress(string)    {}
func (Null) Success(string)     {}
func (Null) Instruction(string) {}
func (Null) ContinuePrompt()    {}
