package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dshills/treefind/internal/config"
	"github.com/dshills/treefind/internal/logging"
	"github.com/dshills/treefind/internal/plugin"
	"github.com/dshills/treefind/internal/report"
	"github.com/dshills/treefind/internal/search"
)

// Options configures a run.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses defaults and
	// the environment only.
	ConfigPath string

	// File is the document to search.
	File string

	// Find is the search term.
	Find string

	// Replace is the replacement; it is used only when HasReplace is set
	// so that an empty replacement deletes matches.
	Replace    string
	HasReplace bool

	// All replaces every match instead of the first.
	All bool

	// IgnoreCase matches case-insensitively regardless of configuration.
	IgnoreCase bool

	// Script is a Lua file run against the session.
	Script string

	// JSON prints a JSON report instead of the document text.
	JSON bool

	// Preview opens the interactive terminal preview.
	Preview bool

	// Write saves the document back to File.
	Write bool

	// Watch reloads the configuration while the preview is open.
	Watch bool

	// LogLevel overrides the configured log level.
	LogLevel string

	// Stdout receives the text or report. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives log output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Application is one treefind run.
type Application struct {
	opts Options
	cfg  config.Config
	log  *logging.Logger

	logFile io.Closer
	doc     *Document
	session *search.Session
	lua     *plugin.State
	finder  *plugin.FindModule
	watcher *config.Watcher

	replaced int
}

// New creates an application, loading configuration and the document.
func New(opts Options) (*Application, error) {
	if opts.File == "" {
		return nil, ErrNoInput
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	if app.opts.IgnoreCase {
		cfg.Search.CaseSensitive = false
	}
	app.cfg = cfg

	// 2. Logging
	if err := app.setupLogging(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Document
	app.doc, err = LoadDocument(app.opts.File)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.log.Debug("loaded %s (markdown=%t)", app.doc.Name, app.doc.Markdown)

	// 4. Search session
	app.session = search.New(app.doc.Engine, app.cfg.Search,
		search.WithLogger(app.log.WithComponent("search")))

	// 5. Script runtime
	if app.opts.Script != "" {
		app.lua = plugin.NewState(plugin.WithOutput(app.opts.Stderr))
		app.finder = plugin.NewFindModule(app.session, app.doc.Engine)
		if err := app.lua.Register(app.finder); err != nil {
			return &InitError{Component: "lua", Err: err}
		}
	}

	// 6. Config watcher
	if app.opts.Watch && app.opts.ConfigPath != "" {
		app.watcher, err = config.NewWatcher(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config watcher", Err: err}
		}
	}
	return nil
}

// setupLogging builds the logger. The preview owns the terminal, so without
// a log file its output is discarded.
func (app *Application) setupLogging() error {
	var out io.Writer = app.opts.Stderr
	if app.opts.Preview {
		out = io.Discard
	}
	if app.cfg.Logging.File != "" {
		f, err := logging.OpenFile(app.cfg.Logging.FileConfig())
		if err != nil {
			return err
		}
		app.logFile = f
		if app.opts.Preview {
			out = f
		} else {
			out = logging.Tee(out, f)
		}
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = app.cfg.Logging.LogLevel()
	logCfg.Output = out
	app.log = logging.New(logCfg)
	return nil
}

// Config returns the effective configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Document returns the loaded document.
func (app *Application) Document() *Document {
	return app.doc
}

// Session returns the search session.
func (app *Application) Session() *search.Session {
	return app.session
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.log
}

// Run performs the requested operations and writes the result.
// The preview, when requested, runs on screen between the operations and
// the output. Run initializes screen and finalizes it before writing.
func (app *Application) Run(ctx context.Context, screen Screen) error {
	if app.opts.Find == "" && app.opts.Script == "" && !app.opts.Preview {
		return ErrNoOperation
	}

	if err := app.runOperations(); err != nil {
		return err
	}

	if app.opts.Preview {
		if err := app.runPreview(ctx, screen); err != nil {
			return err
		}
	}

	if app.opts.Write {
		if err := app.doc.Save(); err != nil {
			return err
		}
		app.log.Info("wrote %s", app.doc.Path)
	}
	return app.writeOutput()
}

// runPreview owns the screen for the duration of the preview.
func (app *Application) runPreview(ctx context.Context, screen Screen) error {
	if screen == nil {
		return &InitError{Component: "preview", Err: fmt.Errorf("no screen")}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()
	return app.Preview(ctx, screen)
}

// runOperations runs the script, or the find/replace flags.
func (app *Application) runOperations() error {
	if app.lua != nil {
		if err := app.lua.DoFile(app.opts.Script); err != nil {
			return fmt.Errorf("script %s: %w", app.opts.Script, err)
		}
		app.replaced += app.finder.Replaced()
		return nil
	}
	if app.opts.Find == "" {
		return nil
	}

	var (
		res search.Result
		err error
	)
	switch {
	case app.opts.HasReplace && app.opts.All:
		res, err = app.session.ReplaceAll(app.opts.Find, app.opts.Replace)
	case app.opts.HasReplace:
		if res, err = app.session.Find(app.opts.Find); err == nil && res.OK() {
			res, err = app.session.Replace(app.opts.Find, app.opts.Replace)
		}
	default:
		res, err = app.session.Find(app.opts.Find)
	}
	if err != nil {
		return err
	}

	app.replaced += res.Replaced
	switch {
	case search.IsNoOp(res.Reason):
		app.log.Info("%q: %v", app.opts.Find, res.Reason)
	case !res.OK():
		return fmt.Errorf("%q: %w", app.opts.Find, res.Reason)
	default:
		app.log.Debug("%q: %d matches, %d replaced", app.opts.Find, res.Matches.Len(), res.Replaced)
	}
	return nil
}

// writeOutput prints the document text or the JSON report.
func (app *Application) writeOutput() error {
	if !app.opts.JSON {
		_, err := fmt.Fprintln(app.opts.Stdout, app.doc.Content())
		return err
	}

	rep, err := report.FromSession(app.session, app.doc.Engine, app.replaced, app.doc.Content())
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	data, err := rep.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.opts.Stdout, "%s\n", data)
	return err
}

// Close releases the session, script runtime, watcher and log file.
func (app *Application) Close() {
	if app.session != nil {
		_ = app.session.Detach()
	}
	if app.lua != nil {
		app.lua.Close()
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}
