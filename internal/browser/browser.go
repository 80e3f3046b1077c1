// Package browser opens URLs in the user's default web browser.
package browser

import (
	"io"
	"log/slog"

	pkgbrowser "github.com/pkg/browser"

	"git.home.luguber.info/inful/doctasks/internal/logfields"
)

// System opens URLs with the platform launcher (xdg-open, open, rundll32).
type System struct{}

// NewSystem returns a System opener whose launcher output is discarded.
func NewSystem() System {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return System{}
}

// Open launches the default browser at url.
func (System) Open(url string) error {
	slog.Info("Opening browser", logfields.URL(url))
	return pkgbrowser.OpenURL(url)
}

// Noop never opens anything. Used for dry runs and headless environments.
type Noop struct{}

func (Noop) Open(url string) error {
	slog.Debug("Skipping browser", logfields.URL(url))
	return nil
}
