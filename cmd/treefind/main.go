// Package main is the entry point for treefind.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/treefind/internal/app"
	"github.com/dshills/treefind/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Args[1:])
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var screen app.Screen
	if opts.Preview {
		screen, err = tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
	}

	if err := application.Run(ctx, screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses args into options. done is true when the program should
// exit with code without running.
func parseFlags(args []string) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("treefind", flag.ContinueOnError)

	var (
		replace     string
		showVersion bool
		showEnv     bool
	)
	fs.StringVar(&opts.Find, "find", "", "Search term")
	fs.StringVar(&opts.Find, "f", "", "Search term (shorthand)")
	fs.StringVar(&replace, "replace", "", "Replacement text; replaces the first match")
	fs.BoolVar(&opts.All, "all", false, "Replace every match")
	fs.BoolVar(&opts.IgnoreCase, "i", false, "Match case-insensitively")
	fs.StringVar(&opts.Script, "script", "", "Lua script to run against the session")
	fs.BoolVar(&opts.JSON, "json", false, "Print a JSON report instead of the text")
	fs.BoolVar(&opts.Preview, "preview", false, "Open the interactive terminal preview")
	fs.BoolVar(&opts.Write, "w", false, "Write the result back to the file")
	fs.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file during the preview")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showEnv, "env", false, "List the environment variables that override the configuration")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "treefind - search and replace in documents\n\n")
		fmt.Fprintf(out, "Usage: treefind [options] file\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  treefind -find cat notes.md                  Print the document, searching for cat\n")
		fmt.Fprintf(out, "  treefind -find cat -json notes.md            Report matches as JSON\n")
		fmt.Fprintf(out, "  treefind -find cat -replace dog -all -w a.txt  Replace every cat and save\n")
		fmt.Fprintf(out, "  treefind -script swap.lua notes.md           Run a Lua script\n")
		fmt.Fprintf(out, "  treefind -find cat -replace dog -preview a.txt Step through matches\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Printf("treefind %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}
	if showEnv {
		fmt.Println(strings.Join(config.EnvVars(), "\n"))
		return opts, 0, true
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "replace" {
			opts.HasReplace = true
		}
	})
	opts.Replace = replace

	if opts.All && !opts.HasReplace {
		fmt.Fprintln(os.Stderr, "Error: -all requires -replace")
		return opts, 2, true
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, 2, true
	}
	opts.File = fs.Arg(0)
	return opts, 0, false
}
