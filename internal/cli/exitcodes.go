package cli

import "errors"

// Exit codes for gofill.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a range failed to expand or a pattern failed
	// verification.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65
)

var (
	// ErrInvalidUsage marks errors caused by bad arguments or flags.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks errors loading or validating configuration.
	ErrConfig = errors.New("failed to load configuration")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// Reported reports whether err has already been shown to the user by the
// command's own output, so callers need not log it again.
func Reported(err error) bool {
	return errors.Is(err, ErrBatchFailed) || errors.Is(err, ErrVerifyFailed)
}
