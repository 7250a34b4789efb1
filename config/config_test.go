package config

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesDocumentedValues(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, math.Sqrt2, cfg.RHO, 1e-9)
	assert.Equal(t, uint32(1), cfg.MinSamples)
	assert.Equal(t, uint32(100), cfg.MaxSamples)
	assert.False(t, cfg.Persistent)
	assert.True(t, cfg.CoverageOnly)
	assert.Equal(t, UCT, cfg.ScoreFunction)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNegativeRHO(t *testing.T) {
	cfg := Default()
	cfg.RHO = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsMinSamplesAboveMax(t *testing.T) {
	cfg := Default()
	cfg.MinSamples = 200
	cfg.MaxSamples = 100
	assert.Error(t, cfg.Validate())
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("AFLNET_LEGION_RHO", "2.5")
	t.Setenv("AFLNET_LEGION_MAX_SAMPLES", "250")
	t.Setenv("AFLNET_LEGION_SCORE_FUNCTION", "random")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, cfg.RHO, 1e-9)
	assert.Equal(t, uint32(250), cfg.MaxSamples)
	assert.Equal(t, Random, cfg.ScoreFunction)
}

func TestLoad_RejectsInvalidResult(t *testing.T) {
	t.Setenv("AFLNET_LEGION_MIN_SAMPLES", "999")
	t.Setenv("AFLNET_LEGION_MAX_SAMPLES", "1")

	_, err := Load("")
	assert.Error(t, err)
}

func TestScoreFunction_String(t *testing.T) {
	assert.Equal(t, "UCT", UCT.String())
	assert.Equal(t, "Random", Random.String())
}

func TestMain(m *testing.M) {
	for _, v := range []string{"AFLNET_LEGION_RHO", "AFLNET_LEGION_MAX_SAMPLES", "AFLNET_LEGION_MIN_SAMPLES", "AFLNET_LEGION_SCORE_FUNCTION"} {
		os.Unsetenv(v)
	}
	os.Exit(m.Run())
}
