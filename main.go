package main

import (
	"worbots-setup/cmd"
)

// main delegates to cmd.Execute, which parses the command line and exits
// non-zero when the selected command fails.
func main() {
	cmd.Execute()
}
