package cli

import (
	"fmt"
	"os"

	"github.com/mkowalczuk/citelens/internal/model"
	"github.com/mkowalczuk/citelens/internal/pipeline"
	"github.com/mkowalczuk/citelens/internal/report"
	"github.com/mkowalczuk/citelens/internal/reporter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	matchedPath   string
	unmatchedPath string
	noCache       bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <reporters-file> <documents-dir>",
	Short: "Scan a document directory and write citation reports",
	Long: `Scan reads a newline-delimited list of case-reporter abbreviations,
builds one citation pattern from it, and processes every file in the
document directory in order:
- Extract raw citation strings in document order
- Fold pin citations onto canonical citations seen earlier in the file
- Count occurrences per document
- Write matched and unmatched CSV reports (no header rows)

Example:
  citelens scan reporters.txt ./opinions
  citelens scan reporters.txt ./opinions --matched out.csv --unmatched misses.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&matchedPath, "matched", "matched_citations.csv", "matched citations output path")
	scanCmd.Flags().StringVar(&unmatchedPath, "unmatched", "unmatched_citations.csv", "unmatched citations output path")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the duplicate-document match cache")
}

func runScan(cmd *cobra.Command, args []string) error {
	reportersFile := args[0]
	documentsDir := args[1]

	if err := checkInputs(reportersFile, documentsDir); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Reporters: %s\n", reportersFile)
		fmt.Fprintf(os.Stderr, "Documents: %s\n", documentsDir)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Output.MatchedPath = matchedPath
	cfg.Output.UnmatchedPath = unmatchedPath
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	if threshold := viper.GetInt("sink.flush_threshold"); threshold > 0 {
		cfg.Sink.FlushThreshold = threshold
	}

	// Load reporters and build the pattern once
	set, err := reporter.Load(reportersFile)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d reporters\n", set.Len())
	}

	p, err := pipeline.NewPipeline(set, cfg)
	if err != nil {
		return err
	}

	// Open output streams
	matchedFile, err := os.Create(cfg.Output.MatchedPath)
	if err != nil {
		return fmt.Errorf("create matched output: %w", err)
	}
	defer func() { _ = matchedFile.Close() }()

	unmatchedFile, err := os.Create(cfg.Output.UnmatchedPath)
	if err != nil {
		return fmt.Errorf("create unmatched output: %w", err)
	}
	defer func() { _ = unmatchedFile.Close() }()

	sink := report.NewSink(matchedFile, unmatchedFile, cfg.Sink.FlushThreshold)

	// Process the corpus
	stats, err := p.Run(documentsDir, sink)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Scan Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Files:       %d processed, %d skipped\n", stats.FilesProcessed, stats.FilesSkipped)
	fmt.Fprintf(os.Stderr, "  Citations:   %d\n", stats.Citations)
	fmt.Fprintf(os.Stderr, "  Unmatched:   %d\n", stats.Unmatched)
	if stats.CacheHits > 0 {
		fmt.Fprintf(os.Stderr, "  Cache hits:  %d\n", stats.CacheHits)
	}
	if stats.RowFailures > 0 {
		fmt.Fprintf(os.Stderr, "  Row writes suppressed: %d\n", stats.RowFailures)
	}
	fmt.Fprintf(os.Stderr, "  Matched CSV:   %s\n", cfg.Output.MatchedPath)
	fmt.Fprintf(os.Stderr, "  Unmatched CSV: %s\n", cfg.Output.UnmatchedPath)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// checkInputs verifies both positional arguments exist and are of the right
// kind before any work starts.
func checkInputs(reportersFile, documentsDir string) error {
	info, err := os.Stat(reportersFile)
	if err != nil {
		return &model.ConfigError{Path: reportersFile, Reason: "reporter source not found", Err: err}
	}
	if info.IsDir() {
		return &model.ConfigError{Path: reportersFile, Reason: "reporter source is a directory, expected a file"}
	}

	info, err = os.Stat(documentsDir)
	if err != nil {
		return &model.ConfigError{Path: documentsDir, Reason: "document directory not found", Err: err}
	}
	if !info.IsDir() {
		return &model.ConfigError{Path: documentsDir, Reason: "document path is not a directory"}
	}

	return nil
}
