package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// errorChain splits err into one message per wrapping layer, outermost first.
func errorChain(err error) []string {
	var msgs []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			inner := next.Error()
			if msg == inner {
				// pkg/errors adds a stack layer with the same message.
				err = next
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+inner)
		}
		msgs = append(msgs, msg)
		err = next
	}
	return msgs
}

// printError writes err as "Error: ..." followed by its causes.
func printError(w io.Writer, err error) {
	chain := errorChain(err)
	if len(chain) == 0 {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, chain[0])
	if len(chain) == 1 {
		return
	}
	_, _ = fmt.Fprintln(w, "Caused by:")
	for _, msg := range chain[1:] {
		_, _ = fmt.Fprintf(w, "    %s\n", msg)
	}
}
