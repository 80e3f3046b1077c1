package browser

import (
	"io"
	"testing"

	pkgbrowser "github.com/pkg/browser"
	"github.com/stretchr/testify/require"
)

func TestNewSystemSilencesLauncher(t *testing.T) {
	NewSystem()
	require.Equal(t, io.Discard, pkgbrowser.Stdout)
	require.Equal(t, io.Discard, pkgbrowser.Stderr)
}

func TestNoop(t *testing.T) {
	require.NoError(t, Noop{}.Open("http://127.0.0.1:8000/spok/"))
}
