package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCommand    = "command"
	KeyFile       = "file"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyFormat     = "format"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Command(name string) slog.Attr   { return slog.String(KeyCommand, name) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
