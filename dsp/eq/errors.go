package eq

import "errors"

// Errors returned by equalizer functions.
var (
	ErrInvalidArgument = errors.New("eq: invalid argument")
	ErrOverflow        = errors.New("eq: sample overflow")
)
