package paper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/site"
)

func TestNewAssetLoader_Embedded(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultTheme)
	if err != nil || css == "" {
		t.Errorf("LoadStyle(%q) = %d bytes, %v", DefaultTheme, len(css), err)
	}
	hl, err := loader.LoadHighlight(DefaultHighlightTheme)
	if err != nil || !strings.Contains(hl, ".chroma") {
		t.Errorf("LoadHighlight(%q) error = %v", DefaultHighlightTheme, err)
	}
	shell, err := loader.LoadTemplate("index")
	if err != nil || !strings.Contains(shell, "</body>") {
		t.Errorf("LoadTemplate(index) error = %v", err)
	}
	if _, err := loader.LoadScript("index"); err != nil {
		t.Errorf("LoadScript(index) error = %v", err)
	}
}

func TestNewAssetLoader_PublicErrors(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func() (string, error)
		wantErr error
	}{
		{"missing style", func() (string, error) { return loader.LoadStyle("neon") }, ErrThemeNotFound},
		{"invalid style name", func() (string, error) { return loader.LoadStyle("../etc") }, ErrThemeNotFound},
		{"missing highlight", func() (string, error) { return loader.LoadHighlight("no-such-style") }, ErrHighlightNotFound},
		{"missing template", func() (string, error) { return loader.LoadTemplate("other") }, ErrTemplateNotFound},
		{"missing script", func() (string, error) { return loader.LoadScript("other") }, ErrScriptNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAssetLoader_CustomPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "brand.css"), []byte("body{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}
	if css, err := loader.LoadStyle("brand"); err != nil || css != "body{color:red}" {
		t.Errorf("LoadStyle(brand) = %q, %v", css, err)
	}
	if _, err := loader.LoadStyle(DefaultTheme); err != nil {
		t.Errorf("LoadStyle(default) fallback error = %v", err)
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestConvertError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"style", assets.ErrStyleNotFound, ErrThemeNotFound},
		{"asset name", assets.ErrInvalidAssetName, ErrThemeNotFound},
		{"highlight", assets.ErrHighlightNotFound, ErrHighlightNotFound},
		{"template", assets.ErrTemplateNotFound, ErrTemplateNotFound},
		{"script", assets.ErrScriptNotFound, ErrScriptNotFound},
		{"base path", assets.ErrInvalidBasePath, ErrInvalidAssetPath},
		{"traversal", assets.ErrPathTraversal, ErrInvalidAssetPath},
		{"staging", site.ErrUnsafeStaging, ErrUnsafeStaging},
		{"public passes through", ErrThemeNotFound, ErrThemeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertError(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Errorf("convertError(nil) = %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("convertError(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Error() != tt.in.Error() {
				t.Errorf("message = %q, want original %q", got.Error(), tt.in.Error())
			}
		})
	}
}

func TestConvertError_Unknown(t *testing.T) {
	t.Parallel()

	in := errors.New("disk full")
	if got := convertError(in); got != in {
		t.Errorf("convertError() = %v, want unchanged", got)
	}
}

// staticLoader is a public AssetLoader serving fixed content.
type staticLoader struct {
	style string
}

func (s staticLoader) LoadStyle(name string) (string, error) {
	if name != "house" {
		return "", ErrThemeNotFound
	}
	return s.style, nil
}
func (staticLoader) LoadHighlight(string) (string, error) { return "", ErrHighlightNotFound }
func (staticLoader) LoadTemplate(string) (string, error) {
	return "<html><body></body></html>", nil
}
func (staticLoader) LoadScript(string) (string, error) { return "// client", nil }

func TestPublicToInternalAdapter(t *testing.T) {
	t.Parallel()

	a := &publicToInternalAdapter{pub: staticLoader{style: "x"}}

	if _, err := a.LoadStyle("other"); !errors.Is(err, assets.ErrStyleNotFound) || !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadStyle() error = %v, want both sentinels", err)
	}
	if _, err := a.LoadHighlight("x"); !assets.IsNotFound(err) {
		t.Errorf("LoadHighlight() error = %v, want internal not-found", err)
	}
	if css, err := a.LoadStyle("house"); err != nil || css != "x" {
		t.Errorf("LoadStyle(house) = %q, %v", css, err)
	}
}

func TestBuild_CustomAssetLoader(t *testing.T) {
	t.Parallel()

	b, fs := newMemBuilder(t, map[string]string{
		"docs/a.md":              "# A\n",
		"docs/paper.config.json": `{"theme": "house", "highlight": true}`,
	}, WithAssetLoader(staticLoader{style: "main{}"}))

	result, err := b.Build(t.Context(), "docs")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if result.Highlight {
		t.Error("Highlight = true, want skipped")
	}
	if got := readFile(t, fs, "dist/index.css"); got != "main{}" {
		t.Errorf("index.css = %q", got)
	}
	if got := readFile(t, fs, "dist/index.js"); got != "// client" {
		t.Errorf("index.js = %q", got)
	}
}
