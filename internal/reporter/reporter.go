// Package reporter loads the list of case-reporter abbreviations that the
// citation pattern is built from.
package reporter

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mkowalczuk/citelens/internal/model"
)

// Set is an ordered list of reporter abbreviations. Order is preserved from
// the source file because it decides regex-alternation precedence: the
// first-listed reporter wins on ambiguous overlap.
type Set struct {
	reporters []string
}

// Load reads a newline-delimited reporter file. Blank lines are skipped;
// entries are kept verbatim (escaping happens at pattern-build time). An
// unreadable file or a file with zero usable entries is a ConfigError.
func Load(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &model.ConfigError{Path: path, Reason: "open reporter source", Err: err}
	}
	defer func() { _ = file.Close() }()

	var reporters []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reporters = append(reporters, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, &model.ConfigError{Path: path, Reason: "read reporter source", Err: err}
	}

	if len(reporters) == 0 {
		return nil, &model.ConfigError{Path: path, Reason: "no usable reporter entries"}
	}

	return &Set{reporters: reporters}, nil
}

// NewSet builds a Set directly from entries, preserving order.
func NewSet(reporters []string) (*Set, error) {
	if len(reporters) == 0 {
		return nil, fmt.Errorf("empty reporter list")
	}
	return &Set{reporters: append([]string(nil), reporters...)}, nil
}

// Reporters returns the entries in source order.
func (s *Set) Reporters() []string {
	return s.reporters
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.reporters)
}
