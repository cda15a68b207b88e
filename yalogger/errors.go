package yalogger

import "errors"

// ErrInvalidLogLevel is returned when a log level string cannot be parsed
// into a known Level.
var ErrInvalidLogLevel = errors.New("invalid log level")
