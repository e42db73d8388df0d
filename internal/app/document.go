package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/treefind/internal/engine"
	"github.com/dshills/treefind/internal/engine/doc"
)

// Document is a loaded file and its engine.
type Document struct {
	// Path is the file path.
	Path string

	// Name is the display name.
	Name string

	// Markdown is true when the file was imported as Markdown.
	Markdown bool

	// Engine holds the document tree.
	Engine *engine.Engine

	mode os.FileMode
}

// IsMarkdownPath reports whether path names a Markdown file.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return true
	}
	return false
}

// LoadDocument reads path into a document. Markdown files are parsed into
// block nodes; anything else is split into paragraphs at blank lines.
func LoadDocument(path string, opts ...engine.Option) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	d := &Document{
		Path:     path,
		Name:     filepath.Base(path),
		Markdown: IsMarkdownPath(path),
		mode:     info.Mode().Perm(),
	}
	var root *doc.Node
	if d.Markdown {
		root = doc.FromMarkdown(data)
	} else {
		root = doc.FromText(string(data))
	}
	d.Engine = engine.New(root, opts...)
	return d, nil
}

// Content returns the document text.
func (d *Document) Content() string {
	return d.Engine.Text()
}

// Save writes the document text back to its file.
func (d *Document) Save() error {
	if d.Markdown {
		return &FileError{Op: "save", Path: d.Path, Err: ErrLossyWrite}
	}
	content := d.Content()
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	mode := d.mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(d.Path, []byte(content), mode); err != nil {
		return &FileError{Op: "save", Path: d.Path, Err: err}
	}
	return nil
}
