package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dash.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, float32(100), cfg.Size)
	assert.Len(t, cfg.Gauges, 4)
	assert.Equal(t, 1.8, cfg.Gauges[3].Scale)
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, `
interval: 250ms
columns: 3
sound: true
gauges:
  - preset: Tachometer
    topics: [rpm]
    generator: random
  - preset: Clock
    topics: [h, m, s]
    generator: clock
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, 3, cfg.Columns)
	assert.True(t, cfg.Sound)
	require.Len(t, cfg.Gauges, 2)
	assert.Equal(t, []string{"h", "m", "s"}, cfg.Gauges[1].Topics)
	assert.Equal(t, 1.0, cfg.Gauges[0].Scale)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TXGAUGE_COLUMNS", "4")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Columns)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "columns: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `
gauges:
  - preset: Default
    topics: [a]
    generator: bogus
  - topics: [b]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
	assert.Contains(t, err.Error(), "missing preset")
}

func TestLoadPresetsAndDerived(t *testing.T) {
	p := writeFile(t, `
size: 180
presets:
  - name: Boost
    json: '{"begin":210,"end":-30,"min":-1,"max":2}'
derived:
  - topic: delta
    first: g1
    second: g2
gauges:
  - preset: Boost
    topics: [delta]
    generator: none
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, float32(180), cfg.Size)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "Boost", cfg.Presets[0].Name)
	assert.Contains(t, cfg.Presets[0].JSON, `"min":-1`)
	assert.Equal(t, []Derived{{Topic: "delta", First: "g1", Second: "g2"}}, cfg.Derived)
	assert.Equal(t, GenNone, cfg.Gauges[0].Generator)

	_, err = Load(writeFile(t, `
presets:
  - name: Empty
derived:
  - topic: delta
    first: g1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presets[0]")
	assert.Contains(t, err.Error(), "derived[0]")
}
