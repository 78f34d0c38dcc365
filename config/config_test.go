package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudesheng/repeatpath/repeat"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "rp.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))
	return fn
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, repeat.Options{SizeLimit: 10000, NeighborMin: 10000, InOutThreshold: 2}, cfg.RepeatOptions())
}

func TestLoad_File(t *testing.T) {
	fn := writeFile(t, "repeat_size_limit: 8000\nneighbor_size_minimum: 5000\ndot: true\n")
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.RepeatSizeLimit)
	assert.Equal(t, 5000, cfg.NeighborSizeMinimum)
	assert.Equal(t, DefaultInOutDegreeThreshold, cfg.InOutDegreeThreshold)
	assert.True(t, cfg.Dot)
	assert.False(t, cfg.Fasta)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fn := writeFile(t, "repeat_size_limit: 8000\n")
	t.Setenv(EnvRepeatSizeLimit, "12000")
	t.Setenv(EnvInOutDegreeThreshold, "3")
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 12000, cfg.RepeatSizeLimit)
	assert.Equal(t, 3, cfg.InOutDegreeThreshold)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "repeat_size_limit: [1, 2\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "inout_degree_threshold: 0\n"))
	assert.Error(t, err)

	t.Setenv(EnvNeighborSizeMinimum, "lots")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.RepeatSizeLimit = -1
	assert.Error(t, cfg.Validate())
	cfg = Default()
	cfg.NeighborSizeMinimum = -5
	assert.Error(t, cfg.Validate())
}
