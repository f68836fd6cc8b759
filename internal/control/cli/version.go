package cli

import (
	"fmt"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand contains flags for the `version` command line command, for
// `go-flags` to parse command line args into.
type VersionCommand struct {
}

// Execute executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(versionString())
	return nil
}

func versionString() string {
	return fmt.Sprintf("%s (%s)", version, hash)
}
