// Package renderer paints a document and its search highlights to a tcell
// screen.
//
// Each text node is laid out as one or more screen lines (split at '\n').
// Text is walked by grapheme cluster so wide and combining characters take
// the cells the terminal expects. Marks of the highlight class and the
// current selection are painted with the theme's styles. The last row holds
// a status line.
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	screen.Init()
//	r := renderer.New(screen)
//	r.Draw(engine, "2 matches")
//	screen.Show()
package renderer
