// Package consolidate folds pin citations onto the canonical citations seen
// earlier in the same document and tallies occurrence counts.
//
// Two behaviors are kept deliberately, quirks included, because downstream
// reports depend on them:
//
//   - Re-inserting a canonical citation resets its count to 1 instead of
//     incrementing it.
//   - A pin shorthand is resolved by a plain substring scan over the
//     canonical citations already recorded, with no early exit: a shorthand
//     contained in several earlier citations increments all of them, and a
//     shorthand contained in an unrelated citation is a false positive.
package consolidate

import (
	"strings"

	"github.com/mkowalczuk/citelens/internal/model"
)

// pinMarker separates a pin citation's shorthand from its page reference.
const pinMarker = " at "

// Tally holds one document's canonical citation counts in insertion order.
// Insertion order matters: a pin citation may only resolve against
// citations recorded before it appeared in the document.
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally returns an empty per-document tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// record inserts a canonical citation. A repeated key keeps its original
// position but has its count reset to 1.
func (t *Tally) record(citation string) {
	if _, seen := t.counts[citation]; !seen {
		t.order = append(t.order, citation)
	}
	t.counts[citation] = 1
}

// Citations returns the canonical citations in insertion order.
func (t *Tally) Citations() []string {
	return t.order
}

// Count returns the occurrence count for a canonical citation.
func (t *Tally) Count(citation string) int {
	return t.counts[citation]
}

// Len returns the number of distinct canonical citations.
func (t *Tally) Len() int {
	return len(t.order)
}

// Records converts the tally into report rows for one document, in
// insertion order.
func (t *Tally) Records(filename string) []model.MatchRecord {
	records := make([]model.MatchRecord, 0, len(t.order))
	for _, citation := range t.order {
		records = append(records, model.MatchRecord{
			Filename: filename,
			Citation: citation,
			Count:    t.counts[citation],
		})
	}
	return records
}

// Engine consolidates a document's raw citation matches.
type Engine struct{}

// NewEngine creates a new consolidation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Consolidate walks raw matches strictly in document order. Canonical
// citations (no " at ") are recorded in the tally; pin citations increment
// every earlier-recorded citation containing their shorthand, or are
// returned as unmatched when nothing earlier contains it. A pin that
// precedes its canonical form in the document is always unmatched; there is
// no forward lookahead.
func (e *Engine) Consolidate(rawMatches []string, filename string) (*Tally, []model.UnmatchedRecord) {
	tally := NewTally()
	var unmatched []model.UnmatchedRecord

	for _, raw := range rawMatches {
		if !strings.Contains(raw, pinMarker) {
			tally.record(raw)
			continue
		}

		shorthand := Shorthand(raw)

		resolved := false
		for _, citation := range tally.order {
			if strings.Contains(citation, shorthand) {
				tally.counts[citation]++
				resolved = true
			}
		}

		if !resolved {
			unmatched = append(unmatched, model.UnmatchedRecord{
				Filename:  filename,
				Shorthand: shorthand,
			})
		}
	}

	return tally, unmatched
}

// Shorthand derives a pin citation's lookup key: the text before the first
// " at ", right-trimmed of spaces and the separator punctuation that
// bridges pin citations, so "1 F.2d 2, at 5" yields "1 F.2d 2".
func Shorthand(raw string) string {
	idx := strings.Index(raw, pinMarker)
	if idx < 0 {
		return raw
	}
	return strings.TrimRight(raw[:idx], " ,?")
}
