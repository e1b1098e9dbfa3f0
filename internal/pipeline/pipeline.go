// Package pipeline orchestrates a citation counting run: reporter list to
// pattern, documents to matches, matches to consolidated report rows.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkowalczuk/citelens/internal/cache"
	"github.com/mkowalczuk/citelens/internal/consolidate"
	"github.com/mkowalczuk/citelens/internal/extract"
	"github.com/mkowalczuk/citelens/internal/model"
	"github.com/mkowalczuk/citelens/internal/report"
	"github.com/mkowalczuk/citelens/internal/reporter"
)

// Pipeline wires the matcher, consolidation engine and match cache for one
// run. The run is sequential: one document is read, matched, consolidated
// and exported before the next begins, so report rows come out in file
// discovery order.
type Pipeline struct {
	matcher    *extract.Matcher
	engine     *consolidate.Engine
	matchCache cache.Cache
	config     *model.Config
}

// NewPipeline builds the citation pattern from the reporter set and wires
// the pipeline. Pattern construction happens here, exactly once; a failure
// aborts the run before any document is touched.
func NewPipeline(set *reporter.Set, cfg *model.Config) (*Pipeline, error) {
	matcher, err := extract.NewMatcher(set)
	if err != nil {
		return nil, err
	}

	var matchCache cache.Cache
	if cfg.Cache.Enabled {
		matchCache = cache.NewRunCache()
	}

	return &Pipeline{
		matcher:    matcher,
		engine:     consolidate.NewEngine(),
		matchCache: matchCache,
		config:     cfg,
	}, nil
}

// Run processes every regular file in dir, in lexical filename order, and
// exports each document's rows to the sink. Unreadable files are warned
// about and skipped; the batch continues. The sink is force-flushed once at
// the end.
func (p *Pipeline) Run(dir string, sink *report.Sink) (*model.RunStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &model.ConfigError{Path: dir, Reason: "read document directory", Err: err}
	}

	stats := &model.RunStats{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			// One bad file must not abort the batch.
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			stats.FilesSkipped++
			continue
		}

		if err := p.processDocument(name, string(data), sink, stats); err != nil {
			return nil, err
		}
		stats.FilesProcessed++
	}

	sink.Flush()
	stats.RowFailures = sink.Failures()

	return stats, nil
}

// processDocument matches, consolidates and exports a single document.
func (p *Pipeline) processDocument(name, content string, sink *report.Sink, stats *model.RunStats) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	if isHTML(name) {
		if text, err := extract.VisibleText(content); err == nil {
			content = text
		}
	}

	matches, err := p.matchContent(content, stats)
	if err != nil {
		return fmt.Errorf("match %s: %w", name, err)
	}

	tally, unmatched := p.engine.Consolidate(matches, name)

	for _, rec := range tally.Records(name) {
		sink.AppendMatch(rec)
	}
	for _, rec := range unmatched {
		sink.AppendUnmatched(rec)
	}
	sink.DocumentDone()

	stats.Citations += tally.Len()
	stats.Unmatched += len(unmatched)

	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ %s: %d citations, %d unmatched\n", name, tally.Len(), len(unmatched))
	}

	return nil
}

// matchContent applies the pattern, going through the content-hash cache
// when one is configured.
func (p *Pipeline) matchContent(content string, stats *model.RunStats) ([]string, error) {
	if p.matchCache == nil {
		return p.matcher.Match(content)
	}

	key := cache.Key(content)
	if matches, found := p.matchCache.Get(key); found {
		stats.CacheHits++
		return matches, nil
	}

	matches, err := p.matcher.Match(content)
	if err != nil {
		return nil, err
	}
	p.matchCache.Set(key, matches)

	return matches, nil
}

func isHTML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
