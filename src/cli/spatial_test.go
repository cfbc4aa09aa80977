package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spatial/src/demo"
	"spatial/src/physics/geometry"
	"spatial/src/render"
)

func runSpatial(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	cmd := NewCmdSpatial("spatial", &out, &errout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSpatialDefaultOutput(t *testing.T) {
	out, err := runSpatial(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, "Vector(1.0, 2.0, 3.0)", lines[0])
	require.Equal(t, "|v1| = 3.7416573867739413", lines[1])
	require.Equal(t, "v1 + v2 = Vector(3.0, 6.0, 9.0)", lines[2])
	require.Equal(t, "v1 · v2 = 28.0", lines[3])
	require.Equal(t, "Collinear? True", lines[4])
	require.Equal(t, "Ball(center=Point(0.0, 0.0, 0.0), radius=2.5)", lines[5])
	require.Equal(t, "Point inside ball? True", lines[6])
	require.True(t, strings.HasPrefix(lines[7], "Surface area: 78.5398"))
	require.True(t, strings.HasPrefix(lines[8], "Volume: 65.4498"))
}

func TestSpatialJSONWithRadius(t *testing.T) {
	out, err := runSpatial(t, "-o", "json", "--radius", "1")
	require.NoError(t, err)

	var report demo.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 1.0, report.Ball.Radius())
	require.False(t, report.Contains)
}

func TestSpatialConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("v2: [3, 2, 1]\noutput: yaml\n"), 0o644))

	out, err := runSpatial(t, "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "collinear: false")
	require.Contains(t, out, "dot: 10")
}

func TestSpatialErrors(t *testing.T) {
	_, err := runSpatial(t, "--radius=-1")
	require.True(t, errors.Is(err, geometry.ErrNegativeRadius))

	_, err = runSpatial(t, "--output=xml")
	require.True(t, errors.Is(err, render.ErrUnknownFormat))

	_, err = runSpatial(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.True(t, errors.Is(err, demo.ErrInvalidConfig))

	_, err = runSpatial(t, "extra")
	require.Error(t, err)
}
