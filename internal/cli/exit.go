package cli

import (
	"errors"

	"github.com/pfrederiksen/escala/internal/schedule"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitUsage     = 2
	ExitRequest   = 3
	ExitDecode    = 4
	ExitDateParse = 5
)

// ExitCode maps a runtime error to the process exit code of its kind
func ExitCode(err error) int {
	var (
		reqErr    *schedule.RequestError
		decodeErr *schedule.DecodeError
		dateErr   *schedule.DateParseError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &reqErr):
		return ExitRequest
	case errors.As(err, &decodeErr):
		return ExitDecode
	case errors.As(err, &dateErr):
		return ExitDateParse
	default:
		return ExitError
	}
}
