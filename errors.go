package utern

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is the cause of every error returned for input which can not produce a valid layout
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// invalidConfiguration wraps ErrInvalidConfiguration with formatted details
func invalidConfiguration(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

// IsInvalidConfiguration reports whether err was caused by a rejected configuration
func IsInvalidConfiguration(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidConfiguration
}
