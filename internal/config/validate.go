package config

import "fmt"

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

var logFormats = map[string]struct{}{
	"json": {}, "text": {},
}

// Validate checks cross-field constraints cleanenv tags cannot express.
func (c *Config) Validate() error {
	if _, ok := logLevels[c.Log.Level]; !ok {
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if _, ok := logFormats[c.Log.Format]; !ok {
		return fmt.Errorf("log.format must be json or text; got %q", c.Log.Format)
	}
	if c.Database.DSN != "" && c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be at least 1; got %d", c.Database.MaxConns)
	}
	if c.Analysis.MinTextLength < 1 {
		return fmt.Errorf("analysis.min_text_length must be positive; got %d", c.Analysis.MinTextLength)
	}
	if c.Review.NewPerSession < 0 || c.Review.ReviewPerSession < 0 {
		return fmt.Errorf("review session sizes cannot be negative")
	}
	if c.Recommend.Count < 1 {
		return fmt.Errorf("recommend.count must be positive; got %d", c.Recommend.Count)
	}
	return nil
}
