package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvCI, "true")
	t.Setenv(EnvToken, "abc")
	require.Equal(t, Env{OnCI: true, Token: "abc"}, LoadEnv())

	t.Setenv(EnvCI, "")
	t.Setenv(EnvToken, "")
	require.Equal(t, Env{}, LoadEnv())
}

func TestRequireToken(t *testing.T) {
	token, err := RequireToken(Env{Token: "abc"})
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	_, err = RequireToken(Env{OnCI: true})
	require.Error(t, err)
	require.True(t, derrors.HasCategory(err, derrors.CategoryAuth))
	classified, ok := derrors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, MissingTokenMessage, classified.Message())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DOCTASKS_TEST_A=from-file\nDOCTASKS_TEST_B=from-file\n"), 0o600))
	t.Setenv("DOCTASKS_TEST_A", "")
	require.NoError(t, os.Unsetenv("DOCTASKS_TEST_A"))
	t.Setenv("DOCTASKS_TEST_B", "preset")

	loaded, err := LoadDotEnv(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".env.local"), loaded)
	require.Equal(t, "from-file", os.Getenv("DOCTASKS_TEST_A"))
	require.Equal(t, "preset", os.Getenv("DOCTASKS_TEST_B"))
	require.NoError(t, os.Unsetenv("DOCTASKS_TEST_A"))
}

func TestLoadDotEnv_NoFile(t *testing.T) {
	loaded, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, loaded)
}
