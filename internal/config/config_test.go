package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"email"}, cfg.Pipeline.RequiredFields)
	assert.Equal(t, "flag", cfg.Pipeline.RequiredPolicy)
	assert.Equal(t, "US", cfg.Pipeline.DefaultPhoneRegion)

	assert.Equal(t, 0.0, cfg.Scoring.Min)
	assert.Equal(t, 100.0, cfg.Scoring.Max)
	assert.Equal(t, 1, cfg.Scoring.Precision)
	assert.Equal(t, 5.0, cfg.Scoring.EnrichmentBonus)
	assert.NotEmpty(t, cfg.Scoring.TargetIndustries)
	assert.NotEmpty(t, cfg.Scoring.PositiveMarkers)

	assert.Equal(t, 70.0, cfg.Segment.HighThreshold)
	assert.Equal(t, 50.0, cfg.Segment.MidThreshold)

	assert.False(t, cfg.Enrich.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_WeightsSumToOne(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	w := cfg.Scoring.Weights
	sum := w.Role + w.Industry + w.Region + w.Seniority + w.Contactability
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STRATEGIST_SEGMENT_HIGH_THRESHOLD", "80")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Segment.HighThreshold)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
