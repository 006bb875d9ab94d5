package main

import (
	"os"

	"github.com/yigit/alumnet/cmd/alumnictl/commands"
)

// Version information, set during build
var version = "dev"

func main() {
	commands.SetVersion(version)
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
