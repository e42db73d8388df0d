package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/treefind/internal/config"
	"github.com/dshills/treefind/internal/renderer"
	"github.com/dshills/treefind/internal/search"
)

// Screen is the terminal the preview draws on.
type Screen = tcell.Screen

// previewKeys is shown in the status line.
const previewKeys = "n/p move  r replace  a all  u/U undo/redo  h highlight  q quit"

// Preview shows the document with its matches and handles keys until the
// user quits or ctx is done. The caller initializes screen and finalizes
// it afterwards.
func (app *Application) Preview(ctx context.Context, screen Screen) error {
	r := renderer.New(screen, renderer.WithClass(app.cfg.Search.FindClass))
	p := &preview{app: app, r: r, screen: screen}
	if app.opts.Find != "" {
		if _, ok := app.session.Term(); !ok {
			if err := p.apply(app.session.Find(app.opts.Find)); err != nil {
				return err
			}
		}
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	var updates <-chan config.Config
	var watchErrs <-chan error
	if app.watcher != nil {
		updates = app.watcher.Updates()
		watchErrs = app.watcher.Errors()
	}

	for {
		p.draw()
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := p.handleEvent(ev); err != nil {
				if err == ErrQuit {
					return nil
				}
				return err
			}
		case cfg := <-updates:
			p.reconfigure(cfg)
		case err := <-watchErrs:
			app.log.Warn("config reload: %v", err)
			p.status = fmt.Sprintf("config: %v", err)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

type preview struct {
	app    *Application
	r      *renderer.Renderer
	screen Screen
	status string
}

func (p *preview) draw() {
	line := previewKeys
	if term, ok := p.app.session.Term(); ok {
		line = fmt.Sprintf("%q %d  %s", term.Text, len(p.app.session.Highlights()), previewKeys)
	}
	if p.status != "" {
		line = p.status + "  " + line
	}
	p.r.Draw(p.app.doc.Engine, line)
	p.screen.Show()
}

func (p *preview) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		return p.handleKey(ev)
	}
	return nil
}

func (p *preview) handleKey(ev *tcell.EventKey) error {
	s := p.app.session
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyDown:
		return p.apply(s.FindNext())
	case tcell.KeyUp:
		return p.apply(s.FindPrev())
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'q':
		return ErrQuit
	case 'n':
		return p.apply(s.FindNext())
	case 'p', 'N':
		return p.apply(s.FindPrev())
	case 'r', 'a':
		term, ok := s.Term()
		if !ok {
			p.status = search.ErrNoActiveSearch.Error()
			return nil
		}
		replacement := term.Replacement
		if replacement == "" {
			if !p.app.opts.HasReplace {
				p.status = "no replacement given"
				return nil
			}
			replacement = p.app.opts.Replace
		}
		if ev.Rune() == 'a' {
			return p.apply(s.ReplaceAll(term.Text, replacement))
		}
		return p.apply(s.Replace(term.Text, replacement))
	case 'u':
		return p.undo(false)
	case 'U':
		return p.undo(true)
	case 'h':
		return p.apply(s.SetHighlightAll(!s.Config().HighlightAll))
	}
	return nil
}

// undo reverts or reapplies the last edit and rescans the active term.
func (p *preview) undo(redo bool) error {
	e := p.app.doc.Engine
	info, ok := e.UndoInfo()
	step, verb, none := e.Undo, "undid", "nothing to undo"
	if redo {
		info, ok = e.RedoInfo()
		step, verb, none = e.Redo, "redid", "nothing to redo"
	}
	if !ok {
		p.status = none
		return nil
	}
	if err := step(); err != nil {
		p.status = err.Error()
		return nil
	}
	p.status = fmt.Sprintf("%s %s", verb, info.Description)
	if term, ok := p.app.session.Term(); ok {
		_, err := p.app.session.Find(term.Text)
		return err
	}
	return nil
}

// apply records the outcome of a session operation in the status line.
func (p *preview) apply(res search.Result, err error) error {
	if err != nil {
		return err
	}
	p.app.replaced += res.Replaced
	switch {
	case !res.OK():
		p.status = res.Reason.Error()
	case res.Replaced > 0:
		p.status = fmt.Sprintf("replaced %d", res.Replaced)
	case res.Outcome == search.OutcomeWrapped:
		p.status = "wrapped"
	default:
		p.status = ""
	}
	return nil
}

func (p *preview) reconfigure(cfg config.Config) {
	if p.app.opts.IgnoreCase {
		cfg.Search.CaseSensitive = false
	}
	if err := p.app.session.Configure(cfg.Search); err != nil {
		p.app.log.Warn("apply config: %v", err)
		p.status = fmt.Sprintf("config: %v", err)
		return
	}
	p.app.cfg.Search = cfg.Search
	p.r.SetClass(cfg.Search.FindClass)
	p.app.log.WithField("path", p.app.watcher.Path()).Info("configuration reloaded")
	p.status = "config reloaded"
}
