package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeAsset writes content under base/dir/name, creating parents.
func writeAsset(t *testing.T, base, dir, name, content string) {
	t.Helper()
	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(filepath.Join(full, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewFilesystemLoader(file)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() unexpected error: %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil loader")
		}
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "custom.css", "body { color: red; }")
	writeAsset(t, base, "highlight", "mine.css", ".chroma { color: blue; }")
	writeAsset(t, base, "templates", "index.html", "<html><body></body></html>")
	writeAsset(t, base, "scripts", "index.js", "console.log(1)")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		want    string
		wantErr error
	}{
		{name: "style", load: loader.LoadStyle, asset: "custom", want: "body { color: red; }"},
		{name: "highlight", load: loader.LoadHighlight, asset: "mine", want: ".chroma { color: blue; }"},
		{name: "template", load: loader.LoadTemplate, asset: "index", want: "<html><body></body></html>"},
		{name: "script", load: loader.LoadScript, asset: "index", want: "console.log(1)"},
		{name: "missing style", load: loader.LoadStyle, asset: "nope", wantErr: ErrStyleNotFound},
		{name: "missing highlight", load: loader.LoadHighlight, asset: "nope", wantErr: ErrHighlightNotFound},
		{name: "missing template", load: loader.LoadTemplate, asset: "nope", wantErr: ErrTemplateNotFound},
		{name: "missing script", load: loader.LoadScript, asset: "nope", wantErr: ErrScriptNotFound},
		{name: "traversal name", load: loader.LoadStyle, asset: "../custom", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("load(%q) error = %v, want %v", tt.asset, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("load(%q) unexpected error: %v", tt.asset, err)
			}
			if got != tt.want {
				t.Errorf("load(%q) = %q, want %q", tt.asset, got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.LoadStyle("leak")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrPathTraversal", err)
	}
}
