package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedYAML = `
qbmm_type: cqmom
qbmm_setup:
  config1d:
    - qbmm_type: qmom
      qbmm_setup:
        inv_type: wheeler
        adaptive: 1
        rmin: 1e-8
        eabs: 1e-8
    - qbmm_type: eqmom
      qbmm_setup:
        kernel_type: gauss
        n_ab: 50
        atol: 1e-9
`

func TestParseYAML(t *testing.T) {
	cfg, err := ParseYAML([]byte(nestedYAML))
	require.NoError(t, err)
	assert.Equal(t, nestedConfig(), cfg)
}

func TestParseYAMLFlagForms(t *testing.T) {
	for _, val := range []string{"1", "true", "yes"} {
		cfg, err := ParseYAML([]byte("qbmm_type: qmom\nqbmm_setup:\n  adaptive: " + val + "\n"))
		require.NoError(t, err, val)
		assert.True(t, bool(cfg.Setup.Adaptive), val)
	}
	for _, val := range []string{"0", "false", "no"} {
		cfg, err := ParseYAML([]byte("qbmm_type: qmom\nqbmm_setup:\n  adaptive: " + val + "\n"))
		require.NoError(t, err, val)
		assert.False(t, bool(cfg.Setup.Adaptive), val)
	}

	_, err := ParseYAML([]byte("qbmm_type: qmom\nqbmm_setup:\n  adaptive: maybe\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseYAMLErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := ParseYAML([]byte("qbmm_type: [unclosed"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("missing type", func(t *testing.T) {
		_, err := ParseYAML([]byte("qbmm_setup:\n  rmin: 1e-8\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("cqmom without children", func(t *testing.T) {
		_, err := ParseYAML([]byte("qbmm_type: cqmom\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadChoosesParserByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "qbmm.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(nestedYAML), 0o644))
	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, nestedConfig(), cfg)

	dictPath := filepath.Join(dir, "qbmm.cfg")
	require.NoError(t, os.WriteFile(dictPath, []byte(nestedDict), 0o644))
	cfg, err = Load(dictPath)
	require.NoError(t, err)
	assert.Equal(t, nestedConfig(), cfg)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
