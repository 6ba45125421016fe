package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/passvet/passvet/commands"
)

func main() {
	_, err := flags.Parse(&commands.PassVet)
	if err != nil {
		os.Exit(1)
	}
}
