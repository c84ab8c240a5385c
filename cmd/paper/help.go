package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: paper [build] [flags] <source>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a static site from a markdown directory (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'paper help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: paper build [flags] <source>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static documentation site from a directory of .md files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Directory holding the markdown documents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Site directory (default dist)")
	fmt.Fprintln(w, "      --staging <dir>         Pages and stylesheets directory, deleted on")
	fmt.Fprintln(w, "                              every build (default: output)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --theme <name>          Site theme: default, dark, sepia")
	fmt.Fprintln(w, "      --highlight             Enable code highlighting")
	fmt.Fprintln(w, "      --highlight-theme <s>   Highlight theme (any chroma style)")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom styles, highlight, templates, scripts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build Control:")
	fmt.Fprintln(w, "  -w, --watch                 Rebuild when sources change")
	fmt.Fprintln(w, "      --metrics-file <path>   Write Prometheus metrics after each build")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show stage logs and timing")
	fmt.Fprintln(w, "      --log-format <s>        Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PAPER_THEME, PAPER_HIGHLIGHT_THEME, PAPER_OUTPUT, PAPER_STAGING,")
	fmt.Fprintln(w, "  PAPER_ASSET_PATH (flags take precedence)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config file (in <source>):")
	fmt.Fprintln(w, "  paper.config.json, paper.config.yaml or paper.config.yml")
	fmt.Fprintln(w, "  keys: theme, highlight, highlightTheme, docPath, alias")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 || !isCommand(args[0]) {
		if len(args) > 0 {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		}
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: paper version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: paper help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	}
}
