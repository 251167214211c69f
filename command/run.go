package command

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
	home "github.com/mitchellh/go-homedir"

	"github.com/textscrub/textscrub/censor"
)

// maxLineBytes caps the scanner buffer when censoring files or stdin.
const maxLineBytes = 1024 * 1024

var _ cli.Command = &RunCommand{}

type RunCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	// Built-in masking passes
	links  bool
	ips    bool
	emails bool

	// pattern provides a caller-supplied regular expression to mask
	pattern string

	// text is censored directly when provided; otherwise input is read line
	// by line from the -input file or standard input
	text  string
	input string

	// HCL file location
	config string
}

func (c *RunCommand) init() {
	const (
		linksUsageText   = "Censor http and https URLs"
		ipsUsageText     = "Censor IPv4 addresses"
		emailsUsageText  = "Censor email addresses"
		patternUsageText = "Censor matches of a custom regular expression, usage example: -pattern 'hunter2'"
		textUsageText    = "Text to censor; when omitted, text is read line by line from -input"
		inputUsageText   = "Path to a file to censor; '-' reads from standard input"
		configUsageText  = "Path to HCL configuration file"
	)

	// flag.ContinueOnError allows flag.Parse to return an error if one comes up, rather than doing an `os.Exit(2)`
	// on its own.
	c.flags = flag.NewFlagSet("run", flag.ContinueOnError)

	c.flags.BoolVar(&c.links, "links", false, linksUsageText)
	c.flags.BoolVar(&c.ips, "ips", false, ipsUsageText)
	c.flags.BoolVar(&c.emails, "emails", false, emailsUsageText)
	c.flags.StringVar(&c.pattern, "pattern", "", patternUsageText)
	c.flags.StringVar(&c.text, "text", "", textUsageText)
	c.flags.StringVar(&c.input, "input", "-", inputUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)

	// When invalid flags are provided, Go will output a usage message of its own. If we direct our flag set to
	// io.Discard, it will effectively be hidden, allowing us to print our own Help message upon failure.
	c.flags.SetOutput(io.Discard)
}

// NewRunCommand produces a new *command pointer, initialized for use in a CLI application.
func NewRunCommand(ui cli.Ui) *RunCommand {
	c := &RunCommand{ui: ui}
	c.init()
	return c
}

// RunCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *command.
func RunCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewRunCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *RunCommand) Help() string {
	helpText := `Usage: textscrub run [options]

Censors text from a flag, a file, or standard input and prints the result. The vulgarity dictionary always applies; options select the additional masking passes.
`

	return Usage(helpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *RunCommand) Synopsis() string {
	return "Censor text from a flag, file, or standard input"
}

// Run executes the command.
func (c *RunCommand) Run(args []string) int {
	if err := c.parseFlags(args); err != nil {
		// Output the specific error to help the user understand what went wrong.
		c.ui.Warn(err.Error())
		// Since there was an issue in input, let's show our Help to try and assist the user.
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := configureLogging("textscrub")

	// Build the censor request from HCL config first, then let flags add to it
	var req censor.Request
	if c.config != "" {
		var err error
		req, err = loadConfig(l, c.config)
		if err != nil {
			l.Error("Failed to load configuration", "config", c.config, "error", err)
			return ConfigError
		}
	}
	req = c.mergeRequest(req)
	l.Debug("merged request", "kinds", fmt.Sprintf("%v", req.Kinds), "pattern", req.Pattern)

	cen := censor.New(nil)

	// -text censors one string and prints the result
	if c.text != "" {
		req.Text = c.text
		res, err := cen.Censor(req)
		if err != nil {
			l.Error("Censor run failed", "error", err)
			return CensorError
		}
		c.ui.Output(res.Censored)
		return Success
	}

	in, err := c.openInput()
	if err != nil {
		l.Error("Failed to open input", "input", c.input, "error", err)
		return InputError
	}
	defer func() { _ = in.Close() }()

	if err := censorLines(c.ui, cen, req, in); err != nil {
		l.Error("Censor run failed", "error", err)
		return CensorError
	}

	return Success
}

func (c *RunCommand) parseFlags(args []string) error {
	return c.flags.Parse(args)
}

// mergeRequest merges flags into the censor request, prioritizing flags over HCL config.
func (c *RunCommand) mergeRequest(req censor.Request) censor.Request {
	if c.links {
		req.Kinds = append(req.Kinds, censor.Link)
	}
	if c.ips {
		req.Kinds = append(req.Kinds, censor.IP)
	}
	if c.emails {
		req.Kinds = append(req.Kinds, censor.Email)
	}
	if c.pattern != "" {
		req.Pattern = c.pattern
		req.Kinds = append(req.Kinds, censor.Custom)
	}
	return req
}

// openInput resolves the -input flag to a reader. "-" and the empty string
// mean standard input.
func (c *RunCommand) openInput() (io.ReadCloser, error) {
	if c.input == "" || c.input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	path, err := home.Expand(c.input)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// censorLines runs the request against every line of the reader, writing each
// censored line to the ui in input order.
func censorLines(ui cli.Ui, cen *censor.Censorer, req censor.Request, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		req.Text = scanner.Text()
		res, err := cen.Censor(req)
		if err != nil {
			return err
		}
		ui.Output(res.Censored)
	}
	return scanner.Err()
}
