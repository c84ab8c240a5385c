// Package logfields holds the canonical slog keys shared across packages.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeySource      = "source"
	KeyTarget      = "target"
	KeyTheme       = "theme"
	KeyDocuments   = "documents"
	KeyDirectories = "directories"
	KeyError       = "error"
)

// Stage names used in log lines and metric labels.
const (
	StageConfig     = "load config"
	StageTheme      = "inject theme"
	StageCatalog    = "generate catalog"
	StageStatic     = "generate static html"
	StageHighlight  = "inject highlight"
	StageShell      = "assemble shell"
	StageBuildTotal = "build"
)

func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Source(p string) slog.Attr       { return slog.String(KeySource, p) }
func Target(p string) slog.Attr       { return slog.String(KeyTarget, p) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func Documents(n int) slog.Attr       { return slog.Int(KeyDocuments, n) }
func Directories(n int) slog.Attr     { return slog.Int(KeyDirectories, n) }

// Since returns the elapsed time from start in milliseconds.
func Since(start time.Time) slog.Attr {
	return DurationMS(float64(time.Since(start).Microseconds()) / 1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
