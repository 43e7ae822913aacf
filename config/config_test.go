package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/socialgraph/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Centrality.MaxIterations)
	assert.Equal(t, 1e-6, cfg.Centrality.Tolerance)
	assert.Equal(t, "socialnet", cfg.Metrics.Namespace)
	assert.Len(t, cfg.NetworkOptions(), 2)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "socialnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nsuggest:\n  limit: 3\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Suggest.Limit)
	assert.Equal(t, 100, cfg.Centrality.MaxIterations, "omitted fields keep defaults")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "log: [",
		"bad level":      "log:\n  level: loud\n",
		"zero iters":     "centrality:\n  max_iterations: 0\n",
		"neg tolerance":  "centrality:\n  tolerance: -1\n",
		"neg limit":      "suggest:\n  limit: -2\n",
		"empty ns":       "metrics:\n  namespace: \"\"\n",
		"punctuation ns": "metrics:\n  namespace: \"a-b\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := config.NewLogger(config.LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = config.NewLogger(config.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = config.NewLogger(config.LogConfig{Level: "loud"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
