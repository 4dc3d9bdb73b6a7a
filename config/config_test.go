package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.RunSpec{Min: 1, Max: 3}, cfg.HeatLoss.PartA)
	assert.Equal(t, config.RunSpec{Min: 4, Max: 10}, cfg.HeatLoss.PartB)
	assert.Equal(t, 1_000_000, cfg.Cycle.Limit)
	assert.Empty(t, cfg.Cache)
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := config.Load("  ")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlgrid.yaml")
	doc := `
log_level: " DEBUG "
workers: 4
heatloss:
  part_b:
    min: 2
    max: 0
cycle:
  hashing: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, config.RunSpec{Min: 2, Max: 0}, cfg.HeatLoss.PartB)
	assert.Equal(t, config.RunSpec{Min: 1, Max: 3}, cfg.HeatLoss.PartA)
	assert.False(t, cfg.Cycle.Hashing)
	assert.Equal(t, 1_000_000, cfg.Cycle.Limit)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"workers":   "workers: -1",
		"run":       "heatloss: {part_a: {min: 3, max: 2}}",
		"run min":   "heatloss: {part_b: {min: 0, max: 2}}",
		"limit":     "cycle: {limit: 0}",
		"garden":    "garden: {steps: -1}",
		"trails":    "trails: {start: 5, peak: 1}",
		"expansion": "expand: {part_a: 0}",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}
}

func TestParse_RejectsUnknownAndMalformed(t *testing.T) {
	_, err := config.Parse([]byte("wokers: 3"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("cycle: {hashing: maybe}"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("workers: [1, 2"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
