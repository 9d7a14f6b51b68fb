package config

import "errors"

// ErrInvalidFlag is returned by [FlagOverrides] when a flag value cannot be
// read back from the flag set.
var ErrInvalidFlag = errors.New("invalid flag value")
