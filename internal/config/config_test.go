// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lispyrun/lispy/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "lispy> ", cfg.Prompt)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lispy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"=> \"\nlog_level: debug\nprelude:\n  - lib.lispy\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "=> ", cfg.Prompt)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"lib.lispy"}, cfg.Prelude)
	require.Equal(t, ".lispy_history", cfg.HistoryFile, "fields absent from the file keep their default")
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := config.DefaultPath()
	require.Equal(t, filepath.Join(home, ".lispyrc.yaml"), path)

	_, err := config.Load(path)
	require.Error(t, err, "no file exists yet, so Load must fail and let the caller fall back to Default()")
	require.True(t, os.IsNotExist(err))
}
