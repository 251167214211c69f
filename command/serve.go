package command

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"

	"github.com/textscrub/textscrub/censor"
	"github.com/textscrub/textscrub/server"
)

var _ cli.Command = &ServeCommand{}

type ServeCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	// Listen address for the HTTP API
	addr string

	// HCL file location
	config string
}

func (c *ServeCommand) init() {
	const (
		addrUsageText   = "Address for the HTTP API to listen on"
		configUsageText = "Path to HCL configuration file"
	)

	// flag.ContinueOnError allows flag.Parse to return an error if one comes up, rather than doing an `os.Exit(2)`
	// on its own.
	c.flags = flag.NewFlagSet("serve", flag.ContinueOnError)

	c.flags.StringVar(&c.addr, "addr", server.DefaultAddr, addrUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)

	// When invalid flags are provided, Go will output a usage message of its own. If we direct our flag set to
	// io.Discard, it will effectively be hidden, allowing us to print our own Help message upon failure.
	c.flags.SetOutput(io.Discard)
}

// NewServeCommand produces a new *command pointer, initialized for use in a CLI application.
func NewServeCommand(ui cli.Ui) *ServeCommand {
	c := &ServeCommand{ui: ui}
	c.init()
	return c
}

// ServeCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *command.
func ServeCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewServeCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *ServeCommand) Help() string {
	helpText := `Usage: textscrub serve [options]

Starts the textscrub HTTP API and blocks until the process receives an interrupt or termination signal.
`

	return Usage(helpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *ServeCommand) Synopsis() string {
	return "Serve the censoring API over HTTP"
}

// Run executes the command.
func (c *ServeCommand) Run(args []string) int {
	if err := c.parseFlags(args); err != nil {
		// Output the specific error to help the user understand what went wrong.
		c.ui.Warn(err.Error())
		// Since there was an issue in input, let's show our Help to try and assist the user.
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := configureLogging("textscrub")

	// Config vulgar blocks land in the process dictionary; the censor block
	// becomes the default request for payloads that pick no passes.
	var defaults censor.Request
	if c.config != "" {
		var err error
		defaults, err = loadConfig(l, c.config)
		if err != nil {
			l.Error("Failed to load configuration", "config", c.config, "error", err)
			return ConfigError
		}
	}

	srv := server.New(server.Config{
		Addr:     c.addr,
		Logger:   l,
		Defaults: defaults,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		l.Error("Server exited with error", "error", err)
		return ServerError
	}

	return Success
}

func (c *ServeCommand) parseFlags(args []string) error {
	return c.flags.Parse(args)
}
