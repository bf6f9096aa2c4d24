package config

// RetentionConfig controls the background retention sweep.
type RetentionConfig struct {
	// AnalysisRetentionDays: analyses older than this are purged regardless
	// of status.
	AnalysisRetentionDays int `yaml:"analysis_retention_days"`

	// MarkRetentionDays: delivery marks older than this are purged.
	// Zero keeps marks indefinitely.
	MarkRetentionDays int `yaml:"mark_retention_days"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AnalysisRetentionDays: 30,
		MarkRetentionDays:     0,
	}
}
