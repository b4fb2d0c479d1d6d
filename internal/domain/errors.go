package domain

import "errors"

// Sentinel errors for the failure modes a command can hit. Handlers match
// on these to choose the user-facing message; none of them terminates the
// process.
var (
	ErrNotAdmin           = errors.New("user is not an admin")
	ErrChannelNotAllowed  = errors.New("channel is not authorized")
	ErrInvalidArguments   = errors.New("invalid command arguments")
	ErrInvalidDateTime    = errors.New("invalid date or time format")
	ErrPositionOutOfRange = errors.New("lesson position out of range")
	ErrSaveFailed         = errors.New("failed to save lessons")
)
