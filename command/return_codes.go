package command

// Success indicates a successful command execution.
const Success int = 0

// The following error group is intended for issues within the command's execution.
const (
	// FlagParseError indicates that a command was unable to successfully parse the flags/arguments provided to it.
	FlagParseError int = iota + 16

	// ConfigError indicates that there was an error loading or applying the textscrub configuration.
	ConfigError

	// InputError indicates that the command could not read the text it was asked to censor.
	InputError

	// CensorError indicates that a censoring run failed before producing a result.
	CensorError
)

// The following error group is intended for issues with the HTTP server.
const (
	// ServerError is returned when the HTTP server cannot start or exits abnormally.
	ServerError int = iota + 32
)
