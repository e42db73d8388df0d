// Package pos provides the address types used to locate text inside a
// tree-shaped document.
//
// A [Position] is a [Path] of child indices from the document root to a
// text-bearing node, plus a byte offset into that node's text. A [Range] is an
// ordered pair of positions.
//
// Position Ordering:
//
// Positions are totally ordered in reading order. Paths compare
// lexicographically (a proper prefix sorts first), then offsets compare
// numerically. Ranges compare by From, then by To.
//
// Positions are plain values. They are not updated when the document
// changes; use the tracking package to map them through an edit.
//
// Basic usage:
//
//	from := pos.New(pos.Path{0, 2}, 4)
//	to := pos.New(pos.Path{0, 2}, 7)
//	r := pos.NewRange(from, to) // [0.2:4, 0.2:7)
package pos
