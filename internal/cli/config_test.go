package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Partial(t *testing.T) {
	path := writeTemp(t, "delgraph.toml", `
min_area = 2.5
min_pts = 8
z_scores = true
`)

	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))

	require.Equal(t, 2.5, cfg.MinArea)
	require.Equal(t, 8, cfg.MinPts)
	require.True(t, cfg.ZScores)

	// Fields absent from the file keep their defaults.
	require.Equal(t, 2, cfg.MinTriangles)
	require.Equal(t, 0.0, cfg.MinDistance)
}

func TestLoadConfig_EmptyPathNoop(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, loadConfig("", &cfg))
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeTemp(t, "delgraph.toml", "min_area = [broken\n")

	cfg := defaultConfig()
	require.Error(t, loadConfig(path, &cfg))
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg := defaultConfig()
	require.Error(t, loadConfig("/nonexistent/delgraph.toml", &cfg))
}
