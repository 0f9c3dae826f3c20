package config

// TableMapping names one source/target table pair and the key columns
// Compare should match rows on. KeyColumns is optional; an empty list
// falls back to automatic PrimaryKey resolution.
type TableMapping struct {
	SourceTable string   `yaml:"source_table"`
	TargetTable string   `yaml:"target_table"`
	KeyColumns  []string `yaml:"key_columns,omitempty"`
}

// RunConfig is the tuning knobs shared across every table in a
// MigrationRequest: migration mode, conflict policy, batching, retry,
// and the row-comparison options.
type RunConfig struct {
	Mode string `yaml:"mode"`

	ConflictResolution      string   `yaml:"conflict_resolution,omitempty"`
	ConflictTimestampColumn string   `yaml:"conflict_timestamp_column,omitempty"`
	ConflictRules           []string `yaml:"conflict_rules,omitempty"`

	BatchSize       int    `yaml:"batch_size,omitempty"`
	RetryCount      int    `yaml:"retry_count,omitempty"`
	RetryBackoffMs  int    `yaml:"retry_backoff_ms,omitempty"`
	AutoRollback    bool   `yaml:"auto_rollback,omitempty"`
	TransactionMode string `yaml:"transaction_mode,omitempty"`

	IgnoreColumns       []string `yaml:"ignore_columns,omitempty"`
	NormalizeWhitespace bool     `yaml:"normalize_whitespace,omitempty"`
	CaseInsensitive     bool     `yaml:"case_insensitive,omitempty"`
	NullEqualsEmpty     bool     `yaml:"null_equals_empty,omitempty"`
	NumericTolerance    *float64 `yaml:"numeric_tolerance,omitempty"`
	UseHashMode         bool     `yaml:"use_hash_mode,omitempty"`
}

// MigrationRequest is the full YAML document describing one
// migration run, matching spec.md's migration request DTO.
type MigrationRequest struct {
	SourceConnectionID string         `yaml:"source_connection_id"`
	TargetConnectionID string         `yaml:"target_connection_id"`
	Tables             []TableMapping `yaml:"tables"`
	Config             RunConfig      `yaml:"config"`
}
