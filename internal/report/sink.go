// Package report batches matched and unmatched citation rows and writes
// them out as CSV.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mkowalczuk/citelens/internal/model"
)

// DefaultFlushThreshold is the buffered row count above which a sink
// flushes on its own.
const DefaultFlushThreshold = 500

// WriteOutcome is the fate of a single buffered row. Row writes are
// best-effort: a failed row is counted and dropped rather than aborting the
// batch, so one bad write cannot sink an otherwise-successful run.
type WriteOutcome int

const (
	// OutcomeWritten means the row reached the destination stream.
	OutcomeWritten WriteOutcome = iota
	// OutcomeFailed means the row write failed and was suppressed.
	OutcomeFailed
)

// Sink accumulates report rows in two independent buffers, one per output
// stream, and flushes each buffer whenever it grows past the threshold or a
// forced flush is requested. Rows are serialized as plain CSV with
// quote-on-demand escaping and no header row.
type Sink struct {
	matched   *buffer
	unmatched *buffer
	threshold int
}

// NewSink creates a sink writing matched rows and unmatched rows to the
// given streams. A non-positive threshold falls back to the default.
func NewSink(matched, unmatched io.Writer, threshold int) *Sink {
	if threshold <= 0 {
		threshold = DefaultFlushThreshold
	}
	return &Sink{
		matched:   &buffer{dest: matched},
		unmatched: &buffer{dest: unmatched},
		threshold: threshold,
	}
}

// AppendMatch buffers one matched-citation row and attempts a flush.
func (s *Sink) AppendMatch(rec model.MatchRecord) {
	s.matched.append([]string{rec.Filename, rec.Citation, strconv.Itoa(rec.Count)})
	s.matched.maybeFlush(s.threshold)
}

// AppendUnmatched buffers one unmatched-citation row and attempts a flush.
func (s *Sink) AppendUnmatched(rec model.UnmatchedRecord) {
	s.unmatched.append([]string{rec.Filename, rec.Shorthand})
	s.unmatched.maybeFlush(s.threshold)
}

// DocumentDone attempts a threshold flush of both buffers after one
// document's rows have been appended.
func (s *Sink) DocumentDone() {
	s.matched.maybeFlush(s.threshold)
	s.unmatched.maybeFlush(s.threshold)
}

// Flush forces both buffers out regardless of size. Called once at the end
// of a run.
func (s *Sink) Flush() {
	s.matched.flush()
	s.unmatched.flush()
}

// Failures returns the number of suppressed row-write failures so far.
func (s *Sink) Failures() int {
	return s.matched.failures + s.unmatched.failures
}

// Pending returns the buffered row counts (matched, unmatched), for
// diagnostics and tests.
func (s *Sink) Pending() (int, int) {
	return len(s.matched.rows), len(s.unmatched.rows)
}

// buffer is one output stream's pending rows.
type buffer struct {
	dest     io.Writer
	rows     [][]string
	failures int
}

func (b *buffer) append(row []string) {
	b.rows = append(b.rows, row)
}

func (b *buffer) maybeFlush(threshold int) {
	if len(b.rows) > threshold {
		b.flush()
	}
}

// flush writes every buffered row and clears the buffer. Each row gets its
// own outcome; failures are counted, never propagated.
func (b *buffer) flush() []WriteOutcome {
	outcomes := make([]WriteOutcome, 0, len(b.rows))
	for _, row := range b.rows {
		outcomes = append(outcomes, b.writeRow(row))
	}
	b.rows = b.rows[:0]
	return outcomes
}

// writeRow serializes one row. A fresh csv.Writer per row keeps a sticky
// stream error on one row from poisoning the outcome of the rows after it.
func (b *buffer) writeRow(row []string) WriteOutcome {
	w := csv.NewWriter(b.dest)
	if err := w.Write(row); err != nil {
		b.failures++
		return OutcomeFailed
	}
	w.Flush()
	if err := w.Error(); err != nil {
		b.failures++
		return OutcomeFailed
	}
	return OutcomeWritten
}
