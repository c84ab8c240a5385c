package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/config"
	"github.com/alnah/go-paper/internal/fileutil"
	"github.com/alnah/go-paper/internal/logfields"
	"github.com/alnah/go-paper/internal/pipeline"
)

// Stylesheet links of the built-in shell, rewritten when the stylesheets
// live in a staging directory other than the site directory.
const (
	themeLink     = `href="./` + ThemeFile + `"`
	highlightLink = `<link rel="stylesheet" href="./` + HighlightFile + `">`
)

// Assembler writes the stylesheets and the HTML shell of a site.
type Assembler struct {
	fs      billy.Filesystem
	staging string
	site    string
	loader  assets.AssetLoader
	logger  *slog.Logger
}

// NewAssembler creates an Assembler. Stylesheets go to staging, the shell
// and client script to site. A nil logger discards output.
func NewAssembler(fs billy.Filesystem, staging, site string, loader assets.AssetLoader, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assembler{fs: fs, staging: staging, site: site, loader: loader, logger: logger}
}

// InjectTheme writes the theme stylesheet named by cfg.Theme to
// staging/index.css.
func (a *Assembler) InjectTheme(ctx context.Context, cfg *config.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := themeName(cfg)
	css, err := a.loader.LoadStyle(name)
	if err != nil {
		return err
	}

	target := path.Join(a.staging, ThemeFile)
	if err := fileutil.WriteFile(a.fs, target, []byte(css)); err != nil {
		return err
	}
	a.logger.Debug("Wrote theme", logfields.Theme(name), logfields.Path(target))
	return nil
}

// InjectHighlight writes the code highlight stylesheet to
// staging/highlight.css when cfg.Highlight is set. A highlight theme that
// cannot be found, or is not a valid name, is skipped: it reports false with
// a nil error.
func (a *Assembler) InjectHighlight(ctx context.Context, cfg *config.Config) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if cfg == nil || !cfg.Highlight {
		return false, nil
	}

	name := cfg.HighlightTheme
	if name == "" {
		name = assets.DefaultHighlightName
	}

	css, err := a.loader.LoadHighlight(name)
	if err != nil {
		if assets.IsNotFound(err) || errors.Is(err, assets.ErrInvalidAssetName) {
			a.logger.Debug("Highlight theme not found, skipping", logfields.Theme(name))
			return false, nil
		}
		return false, err
	}

	target := path.Join(a.staging, HighlightFile)
	if err := fileutil.WriteFile(a.fs, target, []byte(css)); err != nil {
		return false, err
	}
	a.logger.Debug("Wrote highlight theme", logfields.Theme(name), logfields.Path(target))
	return true, nil
}

// AssembleShell writes site/index.html with the configuration and catalog
// embedded, and copies the client script to site/index.js.
func (a *Assembler) AssembleShell(ctx context.Context, cfg *config.Config, nodes []catalog.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if nodes == nil {
		nodes = []catalog.Node{}
	}

	shell, err := a.loader.LoadTemplate(assets.ShellTemplateName)
	if err != nil {
		return err
	}
	script, err := a.loader.LoadScript(assets.ClientScriptName)
	if err != nil {
		return err
	}

	shell = a.linkStylesheets(shell)

	page, err := pipeline.InjectShell(shell, pipeline.ShellData{
		Config:   a.clientConfig(cfg),
		Catalogs: nodes,
	})
	if err != nil {
		return fmt.Errorf("assembling %s: %w", ShellFile, err)
	}

	if err := fileutil.WriteFile(a.fs, path.Join(a.site, ShellFile), []byte(page)); err != nil {
		return err
	}
	if err := fileutil.WriteFile(a.fs, path.Join(a.site, ScriptFile), []byte(script)); err != nil {
		return err
	}
	return nil
}

// linkStylesheets points the shell's stylesheet links at the staging
// directory and drops the highlight link when no highlight.css was written.
func (a *Assembler) linkStylesheets(shell string) string {
	if !fileutil.FileExists(a.fs, path.Join(a.staging, HighlightFile)) {
		shell = strings.Replace(shell, highlightLink+"\n", "", 1)
		shell = strings.Replace(shell, highlightLink, "", 1)
	}

	prefix := relativePrefix(a.site, a.staging)
	if prefix == "./" {
		return shell
	}
	shell = strings.ReplaceAll(shell, themeLink, `href="`+prefix+ThemeFile+`"`)
	shell = strings.ReplaceAll(shell, `href="./`+HighlightFile+`"`, `href="`+prefix+HighlightFile+`"`)
	return shell
}

// clientConfig is the configuration exposed as window.__config. When the
// staging directory is not the site directory, docPath defaults to its
// static/ directory.
func (a *Assembler) clientConfig(cfg *config.Config) config.Config {
	out := *cfg
	if out.DocPath == "" {
		if prefix := relativePrefix(a.site, a.staging); prefix != "./" {
			out.DocPath = prefix + StaticDir + "/"
		}
	}
	if out.Alias == nil {
		out.Alias = map[string]string{}
	}
	return out
}

func themeName(cfg *config.Config) string {
	if cfg == nil || cfg.Theme == "" {
		return assets.DefaultStyleName
	}
	return cfg.Theme
}
