package model

// Config holds the complete citelens configuration
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Sink   SinkConfig   `yaml:"sink" mapstructure:"sink"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
}

// OutputConfig controls report destinations and verbosity
type OutputConfig struct {
	MatchedPath   string `yaml:"matched_path" mapstructure:"matched_path"`
	UnmatchedPath string `yaml:"unmatched_path" mapstructure:"unmatched_path"`
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
}

// SinkConfig controls report buffering
type SinkConfig struct {
	// FlushThreshold is the buffered row count above which a sink flushes
	// without waiting for a forced flush.
	FlushThreshold int `yaml:"flush_threshold" mapstructure:"flush_threshold"`
}

// CacheConfig controls the extraction result cache
type CacheConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			MatchedPath:   "matched_citations.csv",
			UnmatchedPath: "unmatched_citations.csv",
		},
		Sink: SinkConfig{
			FlushThreshold: 500,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}
