package model

import (
	"errors"
	"fmt"
)

// ErrPatternNotBuilt is returned when matching is attempted before the
// citation pattern has been constructed.
var ErrPatternNotBuilt = errors.New("citation pattern not built")

// ConfigError reports an unusable input: a missing reporter source, a
// reporter source with no usable entries, or a bad document directory.
// It is fatal and raised before any document work begins.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration: %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PatternBuildError reports a failure to assemble the citation pattern from
// the reporter list. It is fatal for the run and never retried.
type PatternBuildError struct {
	Err error
}

func (e *PatternBuildError) Error() string {
	return fmt.Sprintf("build citation pattern: %v", e.Err)
}

func (e *PatternBuildError) Unwrap() error {
	return e.Err
}
