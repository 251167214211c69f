package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/textscrub/textscrub/command"
	"github.com/textscrub/textscrub/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("textscrub", version.GetVersion().SemanticVersion())
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run":     command.RunCommandFactory(ui),
		"serve":   command.ServeCommandFactory(ui),
		"version": command.VersionCommandFactory(ui),
	}

	rc, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %s", err.Error()))
	}

	return rc
}
