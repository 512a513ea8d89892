package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for each console log level.
// They behave like fmt.Printf and write to stdout, except Error which writes to stderr.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs errors in red on stderr.
var Error = func(format string, a ...any) {
	_, _ = errorColor.Fprintf(color.Error, format, a...)
}

var errorColor = color.New(color.FgRed)

// Debug logs debug messages in cyan once Init(true) has been called.
// Until then it is a no-op, so packages can log before the CLI sets it up.
var Debug = func(format string, a ...any) {}

var debugEnabled bool

// Init enables or disables debug logging.
// It is called from the root command's PersistentPreRun with the value of --debug.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// Silence redirects every level to w. The GUI uses it because a windowed
// process has no console to print to. Debug stays off unless Init enabled it.
func Silence(w io.Writer) {
	Info = fprintf(w)
	Warn = fprintf(w)
	Error = fprintf(w)
	if debugEnabled {
		Debug = fprintf(w)
	}
}

func fprintf(w io.Writer) func(format string, a ...any) {
	return func(format string, a ...any) {
		_, _ = io.WriteString(w, color.New().Sprintf(format, a...))
	}
}
