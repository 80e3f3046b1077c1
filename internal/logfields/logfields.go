package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyTask       = "task"
	KeyStep       = "step"
	KeyTool       = "tool"
	KeyArgs       = "args"
	KeyRemote     = "remote"
	KeyBranch     = "branch"
	KeyURL        = "url"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Task(name string) slog.Attr      { return slog.String(KeyTask, name) }
func Step(name string) slog.Attr      { return slog.String(KeyStep, name) }
func Tool(name string) slog.Attr      { return slog.String(KeyTool, name) }
func Args(args []string) slog.Attr    { return slog.Any(KeyArgs, args) }
func Remote(name string) slog.Attr    { return slog.String(KeyRemote, name) }
func Branch(name string) slog.Attr    { return slog.String(KeyBranch, name) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
