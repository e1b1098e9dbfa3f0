// Package extract builds the citation pattern and applies it to document
// content.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkowalczuk/citelens/internal/model"
	"github.com/mkowalczuk/citelens/internal/reporter"
)

// Matcher applies the compiled citation pattern to document text. The
// pattern is built exactly once, when the Matcher is constructed, and is
// never rebuilt for the Matcher's lifetime.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher assembles the citation pattern from the reporter set. Every
// reporter entry is escaped for literal use before being embedded in the
// alternation group, so metacharacter-laden abbreviations such as
// "F. (2d)" match literally. A failure here is a PatternBuildError and
// aborts the run.
func NewMatcher(set *reporter.Set) (*Matcher, error) {
	pattern, err := buildPattern(set)
	if err != nil {
		return nil, &model.PatternBuildError{Err: err}
	}
	return &Matcher{pattern: pattern}, nil
}

// buildPattern assembles the single citation regexp: a volume number, a
// word boundary and space, one reporter alternative (source order decides
// alternation precedence), then one or more page numbers bridged by the
// separator characters of pin citations (", " and " at "). The multi-run
// tail lets "1 F.2d 2, at 5" come back as one match.
func buildPattern(set *reporter.Set) (*regexp.Regexp, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("no reporter entries")
	}

	escaped := make([]string, 0, set.Len())
	for _, r := range set.Reporters() {
		escaped = append(escaped, regexp.QuoteMeta(r))
	}

	expr := `\d+\b (?:` + strings.Join(escaped, "|") + `)(?:[,?at ]*\d+)+`
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	return pattern, nil
}

// Match returns every full-pattern match in content, in document order.
// Empty or whitespace-only content yields no matches without invoking the
// pattern. Matching is stateless and safe to repeat across documents.
func (m *Matcher) Match(content string) ([]string, error) {
	if m == nil || m.pattern == nil {
		return nil, model.ErrPatternNotBuilt
	}

	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	return m.pattern.FindAllString(content, -1), nil
}
