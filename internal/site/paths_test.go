package site

import (
	"errors"
	"testing"
)

func TestTargetPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		staging    string
		sourceRoot string
		path       string
		want       string
	}{
		{name: "top level document", staging: "dist", sourceRoot: "docs", path: "docs/1_intro.md", want: "dist/static/1_intro.md"},
		{name: "nested document", staging: "dist", sourceRoot: "docs", path: "docs/guides/0_start.md", want: "dist/static/guides/0_start.md"},
		{name: "directory", staging: "dist", sourceRoot: "docs", path: "docs/guides", want: "dist/static/guides"},
		{name: "root repeated below itself", staging: "dist", sourceRoot: "docs", path: "docs/docs/a.md", want: "dist/static/docs/a.md"},
		{name: "current directory root", staging: "../site", sourceRoot: ".", path: "./1_readme.md", want: "../site/static/1_readme.md"},
		{name: "absolute paths", staging: "/tmp/out", sourceRoot: "/srv/docs", path: "/srv/docs/a/b.md", want: "/tmp/out/static/a/b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TargetPath(tt.staging, tt.sourceRoot, tt.path); got != tt.want {
				t.Errorf("TargetPath(%q, %q, %q) = %q, want %q", tt.staging, tt.sourceRoot, tt.path, got, tt.want)
			}
		})
	}
}

func TestTargetPath_Injective(t *testing.T) {
	t.Parallel()

	// Paths that share segments with the root must still map apart.
	paths := []string{
		"docs/a.md",
		"docs/docs/a.md",
		"docs/x/docs/a.md",
		"docs/x/a.md",
		"docs/docs",
		"docs/x",
		"docs/x/docs",
	}

	seen := map[string]string{}
	for _, p := range paths {
		target := TargetPath("dist", "docs", p)
		if prev, ok := seen[target]; ok {
			t.Errorf("TargetPath collision: %q and %q both map to %q", prev, p, target)
		}
		seen[target] = p
	}
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	if got := PagePath("dist", "docs", "docs/book.md/chapter.md"); got != "dist/static/book.md/chapter.html" {
		t.Errorf("PagePath() = %q", got)
	}
}

func TestValidateStaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		staging    string
		sourceRoot string
		wantErr    bool
	}{
		{name: "sibling directory", staging: "dist", sourceRoot: "docs"},
		{name: "nested output", staging: "build/site", sourceRoot: "docs"},
		{name: "empty", staging: "", sourceRoot: "docs", wantErr: true},
		{name: "blank", staging: "  ", sourceRoot: "docs", wantErr: true},
		{name: "working directory", staging: ".", sourceRoot: "docs", wantErr: true},
		{name: "cleaned working directory", staging: "dist/..", sourceRoot: "docs", wantErr: true},
		{name: "filesystem root", staging: "/", sourceRoot: "/srv/docs", wantErr: true},
		{name: "same as source", staging: "docs", sourceRoot: "docs", wantErr: true},
		{name: "inside source", staging: "docs/dist", sourceRoot: "docs", wantErr: true},
		{name: "contains source", staging: "project", sourceRoot: "project/docs", wantErr: true},
		{name: "source is working directory", staging: "dist", sourceRoot: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStaging(tt.staging, tt.sourceRoot)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafeStaging) {
					t.Errorf("ValidateStaging(%q, %q) error = %v, want ErrUnsafeStaging", tt.staging, tt.sourceRoot, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateStaging(%q, %q) unexpected error: %v", tt.staging, tt.sourceRoot, err)
			}
		})
	}
}

func TestRelativePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		site, staging, want string
	}{
		{site: "dist", staging: "dist", want: "./"},
		{site: "dist", staging: "dist/assets", want: "assets/"},
		{site: "dist", staging: ".paper", want: "../.paper/"},
	}

	for _, tt := range tests {
		if got := relativePrefix(tt.site, tt.staging); got != tt.want {
			t.Errorf("relativePrefix(%q, %q) = %q, want %q", tt.site, tt.staging, got, tt.want)
		}
	}
}
