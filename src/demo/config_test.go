package demo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"spatial/src/physics/geometry"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	v, err := NewViper(nil)
	require.NoError(t, err)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Output)

	scene, err := cfg.Scene()
	require.NoError(t, err)
	require.Equal(t, DefaultScene(), scene)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "scene.yaml", `
origin: [1, 1, 1]
probe: [10, 10, 10]
v1: [1, 0, 0]
v2: [0, 1, 0]
radius: 1
output: json
`)
	v, err := NewViper(nil)
	require.NoError(t, err)

	cfg, err := LoadConfig(v, path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Output)

	scene, err := cfg.Scene()
	require.NoError(t, err)
	require.Equal(t, geometry.NewPoint(1, 1, 1), scene.Ball.Center())
	require.Equal(t, 1.0, scene.Ball.Radius())

	report := scene.Evaluate()
	require.False(t, report.Contains)
	require.False(t, report.Collinear)
	require.Equal(t, 0.0, report.Dot)
}

func TestLoadConfigMissingFile(t *testing.T) {
	v, err := NewViper(nil)
	require.NoError(t, err)

	_, err = LoadConfig(v, filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigSceneErrors(t *testing.T) {
	cfg := &Config{
		Origin: []float64{0, 0, 0},
		Probe:  []float64{1, 1},
		V1:     []float64{1, 2, 3},
		V2:     []float64{2, 4, 6},
		Radius: 1,
	}
	_, err := cfg.Scene()
	require.True(t, errors.Is(err, ErrInvalidConfig))
	require.Contains(t, err.Error(), "probe")

	cfg.Probe = []float64{1, 1, 1}
	cfg.Radius = -1
	_, err = cfg.Scene()
	require.True(t, errors.Is(err, geometry.ErrNegativeRadius))
}

func TestFlagsAndEnvironment(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	flags.Float64("radius", 2.5, "")
	require.NoError(t, flags.Parse([]string{"--radius=4"}))

	t.Setenv("SPATIAL_OUTPUT", "yaml")

	v, err := NewViper(flags)
	require.NoError(t, err)
	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)

	require.Equal(t, 4.0, cfg.Radius)
	require.Equal(t, "yaml", cfg.Output)
}
