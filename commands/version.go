package commands

import "fmt"

// version is stamped at build time via -ldflags.
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(version)
	return nil
}
