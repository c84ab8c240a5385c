package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet     bool
	verbose   bool
	logFormat string
}

// siteFlags holds flags overriding the config file.
type siteFlags struct {
	theme          string
	highlight      bool
	highlightSet   bool // --highlight given explicitly
	highlightTheme string
	assetPath      string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common      commonFlags
	site        siteFlags
	output      string
	staging     string
	watch       bool
	metricsFile string
	help        bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show stage logs and timing")
	fs.StringVar(&f.logFormat, "log-format", logFormatText, "log format: text, json")
}

// addSiteFlags adds config override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.theme, "theme", "", "site theme name")
	fs.BoolVar(&f.highlight, "highlight", false, "enable code highlighting")
	fs.StringVar(&f.highlightTheme, "highlight-theme", "", "code highlight theme name")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom assets")
}

// parseBuildFlags parses build flags, returning the positional arguments.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "site output directory (default dist)")
	fs.StringVar(&f.staging, "staging", "", "staging directory for pages and stylesheets (default output)")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when sources change")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.site.highlightSet = fs.Changed("highlight")

	return f, fs.Args(), nil
}
