package config

import "time"

// Config is the full application configuration, loaded from YAML with
// environment-variable overrides.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	RefData   RefDataConfig   `yaml:"refdata"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Review    ReviewConfig    `yaml:"review"`
	Recommend RecommendConfig `yaml:"recommend"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DatabaseConfig configures the optional word-catalog store. An empty
// DSN disables the catalog and the engine falls back to its built-in
// word list.
type DatabaseConfig struct {
	DSN            string        `yaml:"dsn" env:"DATABASE_DSN"`
	MaxConns       int32         `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"4"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"5s"`
}

// RefDataConfig points at the static lookup tables. Missing files are
// valid; scoring degrades to heuristics.
type RefDataConfig struct {
	FrequencyPath string `yaml:"frequency_path" env:"REFDATA_FREQUENCY_PATH"`
	GradePath     string `yaml:"grade_path" env:"REFDATA_GRADE_PATH"`
}

type AnalysisConfig struct {
	MinTextLength int `yaml:"min_text_length" env:"ANALYSIS_MIN_TEXT_LENGTH" env-default:"10"`
}

type ReviewConfig struct {
	NewPerSession    int `yaml:"new_per_session" env:"REVIEW_NEW_PER_SESSION" env-default:"4"`
	ReviewPerSession int `yaml:"review_per_session" env:"REVIEW_REVIEW_PER_SESSION" env-default:"8"`
}

type RecommendConfig struct {
	Count int `yaml:"count" env:"RECOMMEND_COUNT" env-default:"7"`
}
