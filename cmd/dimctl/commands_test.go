package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PORT", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSpaces(t *testing.T) {
	out, err := run(t, "spaces")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "second, metre, kilogram, ampere, kelvin, mole, candela")
}

func TestUnits(t *testing.T) {
	out, err := run(t, "units", "--space", "si")
	require.NoError(t, err)
	assert.Contains(t, out, "newton")
	assert.Contains(t, out, "[-2 1 1 0 0 0 0]")

	_, err = run(t, "units", "--space", "nowhere")
	assert.Error(t, err)
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Add", []string{"add", "2.5", "metre", "3.5", "metre"}, "6 metre (metre)"},
		{"Divide", []string{"divide", "20", "joule", "4", "metre"}, "5 second^-2·metre·kilogram (newton)"},
		{"Multiply", []string{"multiply", "4", "metre", "2", "metre"}, "8 metre^2 (square_metre)"},
		{"DivideByZero", []string{"divide", "1", "metre", "0", "second"}, "+Inf second^-1·metre (metre_per_second)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc", "add", "1", "metre", "1", "second")
	assert.ErrorIs(t, err, vo.ErrDimensionalMismatch)

	_, err = run(t, "calc", "add", "x", "metre", "1", "metre")
	assert.ErrorContains(t, err, "invalid value")

	_, err = run(t, "calc", "modulo", "1", "metre", "1", "metre")
	assert.ErrorContains(t, err, "invalid calculation")

	_, err = run(t, "calc", "add", "1", "metre")
	assert.Error(t, err)
}

func TestConfiguredSpace(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	yaml := "catalog:\n  spaces:\n    - name: custom\n      dimensions: [asd, def]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config-dir", dir, "--no-si", "calc", "multiply", "33", "asd", "22", "def", "--space", "custom"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "726 asd·def", strings.TrimSpace(out.String()))

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config-dir", dir, "calc", "multiply", "1", "metre", "1", "asd", "--right-space", "custom"})
	assert.ErrorIs(t, cmd.Execute(), vo.ErrDimensionSpaceMismatch)
}

func TestCompat(t *testing.T) {
	out, err := run(t, "compat", "metre", "second")
	require.NoError(t, err)
	assert.Contains(t, out, "multiply/divide: allowed")
	assert.Contains(t, out, "add/subtract:    rejected")
}
