package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/alnah/go-paper"
)

func TestResolveLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags buildFlags
		env   envConfig
		want  paper.Layout
	}{
		{"defaults", buildFlags{}, envConfig{}, paper.Layout{Output: "dist"}},
		{"env", buildFlags{}, envConfig{Output: "public", Staging: "tmp"}, paper.Layout{Output: "public", Staging: "tmp"}},
		{"flags win", buildFlags{output: "site", staging: "stage"}, envConfig{Output: "public", Staging: "tmp"}, paper.Layout{Output: "site", Staging: "stage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveLayout(&tt.flags, &tt.env); got != tt.want {
				t.Errorf("resolveLayout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	cfg := &paper.Config{Theme: "dark", Highlight: true, HighlightTheme: "default"}
	applyFlags(&siteFlags{highlightSet: true, highlight: false, highlightTheme: "monokai"}, cfg)

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want unchanged", cfg.Theme)
	}
	if cfg.Highlight {
		t.Error("Highlight = true, want explicit false")
	}
	if cfg.HighlightTheme != "monokai" {
		t.Errorf("HighlightTheme = %q", cfg.HighlightTheme)
	}

	applyFlags(&siteFlags{}, cfg)
	if cfg.HighlightTheme != "monokai" {
		t.Error("unset flags changed config")
	}
}

func TestWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"source", paper.ErrSourceNotFound, true},
		{"theme", paper.ErrThemeNotFound, true},
		{"staging", paper.ErrUnsafeStaging, true},
		{"asset path", paper.ErrInvalidAssetPath, true},
		{"permission", os.ErrPermission, true},
		{"render", paper.ErrRender, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withHint(tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("withHint() lost the wrapped error")
			}
			if has := strings.Contains(got.Error(), "hint:"); has != tt.wantHint {
				t.Errorf("withHint() = %q, want hint %v", got.Error(), tt.wantHint)
			}
		})
	}
}

func TestWithHint_ThemeListsStyles(t *testing.T) {
	t.Parallel()

	msg := withHint(paper.ErrThemeNotFound).Error()
	for _, name := range []string{"default", "dark", "sepia"} {
		if !strings.Contains(msg, name) {
			t.Errorf("hint %q should list %q", msg, name)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     commonFlags
		wantDebug bool
		wantErr   bool
	}{
		{"default text", commonFlags{logFormat: logFormatText}, false, false},
		{"verbose", commonFlags{logFormat: logFormatText, verbose: true}, true, false},
		{"quiet beats verbose", commonFlags{logFormat: logFormatJSON, verbose: true, quiet: true}, false, false},
		{"empty format", commonFlags{}, false, false},
		{"unknown format", commonFlags{logFormat: "xml"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			env := &Environment{Stderr: &buf}
			logger, err := newLogger(env, tt.flags)
			if tt.wantErr {
				if !errors.Is(err, ErrLogFormat) {
					t.Errorf("newLogger() error = %v, want ErrLogFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger() error = %v", err)
			}

			logger.Debug("probe")
			if got := strings.Contains(buf.String(), "probe"); got != tt.wantDebug {
				t.Errorf("debug visible = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}
