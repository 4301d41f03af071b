// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestFieldCmd(t *testing.T) {
	out, err := run(t, "field", "--config", "testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "component: bz")
	assert.Contains(t, out, "sensors:   48")
	assert.Contains(t, out, "mean (nT):")
}

func TestJacobianCmd(t *testing.T) {
	out, err := run(t, "jacobian", "-c", "testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "shape:     48 x 9")
	assert.Contains(t, out, "columns:   [xz yz zz]")
	assert.Contains(t, out, "cond (2):")
}

func TestNoiseCmd(t *testing.T) {
	out, err := run(t, "noise", "--config", "testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "noise std (nT):")
}

func TestNoiseCmd_RequiresGrains(t *testing.T) {
	raw, err := os.ReadFile("testdata/scenario.yaml")
	require.NoError(t, err)
	text := string(raw)
	start := strings.Index(text, "grains:")
	end := strings.Index(text, "scan:")
	require.True(t, start >= 0 && end > start)

	path := filepath.Join(t.TempDir(), "bare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text[:start]+text[end:]), 0o600))

	_, err = run(t, "noise", "--config", path)
	require.ErrorIs(t, err, errNoGrains)

	out, err := run(t, "field", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sensors:   48")
}

func TestLoadScenario_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample:\n  prisms: 1\n  colour: red\n"), 0o600))

	_, err := loadScenario(path)
	require.Error(t, err)

	_, err = loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_Decodes(t *testing.T) {
	sc, err := loadScenario("testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, sc.Sample.Prisms)
	require.Len(t, sc.Sample.Magnetizations, 3)
	assert.Equal(t, 180.0, sc.Sample.Magnetizations[2].Declination)
	assert.Equal(t, -1.0e-3, sc.Scan.Area.X1)
	require.NotNil(t, sc.Sensor)
	require.NotNil(t, sc.Grains)
	assert.Equal(t, int64(42), sc.Grains.Seed)

	model, err := sc.model()
	require.NoError(t, err)
	assert.Len(t, model, 3)
	grains, err := sc.grains()
	require.NoError(t, err)
	assert.Len(t, grains, 25)
}
