package events

import "errors"

// ErrInvalidArgument marks a caller error: bad sizes, counts, windows or horizons.
var ErrInvalidArgument = errors.New("invalid argument")
