package model

// MatchRecord is one row of the matched-citations report: a canonical
// citation and how many times it occurred within a single document.
type MatchRecord struct {
	Filename string `json:"filename"`
	Citation string `json:"citation"`
	Count    int    `json:"count"`
}

// UnmatchedRecord is one row of the unmatched-citations report: a pin
// citation shorthand that could not be resolved to any canonical citation
// seen earlier in the same document.
type UnmatchedRecord struct {
	Filename  string `json:"filename"`
	Shorthand string `json:"shorthand"`
}

// RunStats aggregates counters for the end-of-run summary.
type RunStats struct {
	FilesProcessed int
	FilesSkipped   int
	Citations      int
	Unmatched      int
	RowFailures    int
	CacheHits      int
}
