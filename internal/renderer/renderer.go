package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/treefind/internal/engine/cursor"
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/marks"
	"github.com/dshills/treefind/internal/engine/pos"
)

// DefaultClass is the mark class painted as matches.
const DefaultClass = "find"

// TabWidth is the number of cells a tab advances to.
const TabWidth = 4

// Source is what the renderer reads from the host.
type Source interface {
	Root() *doc.Node
	Selection() cursor.Selection
	Marks(class string) []marks.Mark
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithClass sets the mark class painted as matches.
func WithClass(class string) Option {
	return func(r *Renderer) {
		if class != "" {
			r.class = class
		}
	}
}

// Renderer paints a Source onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	class  string
	top    int // first visible line
}

// New creates a renderer for screen.
func New(screen tcell.Screen, opts ...Option) *Renderer {
	r := &Renderer{
		screen: screen,
		theme:  DefaultTheme(),
		class:  DefaultClass,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Top returns the first visible line.
func (r *Renderer) Top() int {
	return r.top
}

// SetClass changes the mark class painted as matches.
func (r *Renderer) SetClass(class string) {
	if class != "" {
		r.class = class
	}
}

// Draw clears the screen and paints src with status on the last row.
// The view scrolls to keep the selection head visible. Draw does not call
// Show.
func (r *Renderer) Draw(src Source, status string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	rows := height - 1
	lines := Layout(src.Root())
	sel := src.Selection()
	r.reveal(lines, sel.Head, rows)

	hl := groupByPath(src.Marks(r.class))
	for y := 0; y < rows && r.top+y < len(lines); y++ {
		line := lines[r.top+y]
		r.drawLine(y, width, line, hl[line.Path.String()], sel.Range())
	}
	r.drawStatus(height-1, width, status)
}

// reveal scrolls so the line holding p is within rows.
func (r *Renderer) reveal(lines []Line, p pos.Position, rows int) {
	if rows <= 0 {
		return
	}
	i := LineOf(lines, p)
	switch {
	case i < 0:
	case i < r.top:
		r.top = i
	case i >= r.top+rows:
		r.top = i - rows + 1
	}
	if maxTop := len(lines) - rows; r.top > maxTop {
		r.top = max(maxTop, 0)
	}
}

func (r *Renderer) drawLine(y, width int, line Line, hl []pos.Range, sel pos.Range) {
	x := 0
	g := uniseg.NewGraphemes(line.Text)
	for g.Next() && x < width {
		from, _ := g.Positions()
		offset := line.Start + from
		style := r.styleAt(line.Path, offset, hl, sel)

		runes := g.Runes()
		if runes[0] == '\t' {
			next := (x/TabWidth + 1) * TabWidth
			for ; x < next && x < width; x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
			continue
		}

		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

func (r *Renderer) styleAt(path pos.Path, offset int, hl []pos.Range, sel pos.Range) tcell.Style {
	p := pos.New(path, offset)
	if !sel.IsEmpty() && sel.SingleNode() && sel.From.Path.Equal(path) &&
		offset >= sel.From.Offset && offset < sel.To.Offset {
		return r.theme.Current
	}
	for _, h := range hl {
		if !p.Before(h.From) && p.Before(h.To) {
			return r.theme.Match
		}
	}
	return r.theme.Text
}

func (r *Renderer) drawStatus(y, width int, status string) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.theme.Status)
	}
	x := 0
	g := uniseg.NewGraphemes(status)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		runes := g.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], r.theme.Status)
		x += w
	}
}

// groupByPath indexes non-empty mark ranges by their node path.
func groupByPath(ms []marks.Mark) map[string][]pos.Range {
	out := make(map[string][]pos.Range)
	for _, m := range ms {
		if m.Range.IsEmpty() || !m.Range.SingleNode() {
			continue
		}
		key := m.Range.From.Path.String()
		out[key] = append(out[key], m.Range)
	}
	return out
}
