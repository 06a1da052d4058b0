// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Scoring   ScoringConfig   `yaml:"scoring" mapstructure:"scoring"`
	Segment   SegmentConfig   `yaml:"segment" mapstructure:"segment"`
	Enrich    EnrichConfig    `yaml:"enrich" mapstructure:"enrich"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// PipelineConfig configures header normalization and cleaning.
type PipelineConfig struct {
	// Aliases maps normalized header variants to canonical field names.
	// Entries here are merged over the built-in alias table.
	Aliases map[string]string `yaml:"aliases" mapstructure:"aliases"`
	// RequiredFields lists canonical fields that must be non-empty after
	// cleaning.
	RequiredFields []string `yaml:"required_fields" mapstructure:"required_fields"`
	// RequiredPolicy is "drop" or "flag". Drop removes offending records,
	// flag keeps them; both record a warning.
	RequiredPolicy string `yaml:"required_policy" mapstructure:"required_policy"`
	// DefaultPhoneRegion is the ISO region used when parsing phone numbers
	// without a country prefix.
	DefaultPhoneRegion string `yaml:"default_phone_region" mapstructure:"default_phone_region"`
}

// ScoringConfig configures sub-score weights and score bounds.
type ScoringConfig struct {
	Weights          ScoreWeights `yaml:"weights" mapstructure:"weights"`
	TargetIndustries []string     `yaml:"target_industries" mapstructure:"target_industries"`
	TargetRegions    []string     `yaml:"target_regions" mapstructure:"target_regions"`
	Min              float64      `yaml:"min" mapstructure:"min"`
	Max              float64      `yaml:"max" mapstructure:"max"`
	// Precision is the number of decimal places the strategic score is
	// rounded to.
	Precision int `yaml:"precision" mapstructure:"precision"`
	// EnrichmentBonus is the maximum bonus added when AI notes contain a
	// positive marker.
	EnrichmentBonus float64 `yaml:"enrichment_bonus" mapstructure:"enrichment_bonus"`
	// PositiveMarkers are substrings that count as positive signal in AI
	// notes. Matching is case-insensitive.
	PositiveMarkers []string `yaml:"positive_markers" mapstructure:"positive_markers"`
}

// ScoreWeights holds the per-dimension weights for the strategic score.
type ScoreWeights struct {
	Role           float64 `yaml:"role" mapstructure:"role"`
	Industry       float64 `yaml:"industry" mapstructure:"industry"`
	Region         float64 `yaml:"region" mapstructure:"region"`
	Seniority      float64 `yaml:"seniority" mapstructure:"seniority"`
	Contactability float64 `yaml:"contactability" mapstructure:"contactability"`
}

// SegmentConfig holds the segmentation thresholds.
type SegmentConfig struct {
	HighThreshold float64 `yaml:"high_threshold" mapstructure:"high_threshold"`
	MidThreshold  float64 `yaml:"mid_threshold" mapstructure:"mid_threshold"`
}

// EnrichConfig configures the optional AI enrichment collaborator.
type EnrichConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key string `yaml:"key" mapstructure:"key"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STRATEGIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("pipeline.required_fields", []string{"email"})
	v.SetDefault("pipeline.required_policy", "flag")
	v.SetDefault("pipeline.default_phone_region", "US")
	v.SetDefault("scoring.weights.role", 0.15)
	v.SetDefault("scoring.weights.industry", 0.25)
	v.SetDefault("scoring.weights.region", 0.05)
	v.SetDefault("scoring.weights.seniority", 0.30)
	v.SetDefault("scoring.weights.contactability", 0.25)
	v.SetDefault("scoring.target_industries", []string{
		"fintech", "cybersecurity", "saas", "it services",
	})
	v.SetDefault("scoring.target_regions", []string{
		"north america", "europe", "apac", "middle east",
	})
	v.SetDefault("scoring.min", 0.0)
	v.SetDefault("scoring.max", 100.0)
	v.SetDefault("scoring.precision", 1)
	v.SetDefault("scoring.enrichment_bonus", 5.0)
	v.SetDefault("scoring.positive_markers", []string{
		"growth", "hiring", "buying-readiness", "expansion", "automation",
	})
	v.SetDefault("segment.high_threshold", 70.0)
	v.SetDefault("segment.mid_threshold", 50.0)
	v.SetDefault("enrich.enabled", false)
	v.SetDefault("enrich.model", "claude-haiku-4-5-20251001")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
