package search

// DefaultFindClass is the mark class used for highlights.
const DefaultFindClass = "find"

// Config holds search options.
type Config struct {
	// HighlightAll marks every match and extends highlights while typing.
	HighlightAll bool `toml:"highlight_all"`

	// FindNextAfterReplace selects the next match after Replace.
	FindNextAfterReplace bool `toml:"find_next_after_replace"`

	// FindClass is the host mark class of highlights.
	FindClass string `toml:"find_class"`

	// CaseSensitive selects literal byte-for-byte matching.
	CaseSensitive bool `toml:"case_sensitive"`

	// PreserveCase adapts the replacement to the case of the matched text.
	// It only applies when CaseSensitive is false.
	PreserveCase bool `toml:"preserve_case"`
}

// DefaultConfig returns the default search options.
func DefaultConfig() Config {
	return Config{
		HighlightAll:         true,
		FindNextAfterReplace: true,
		FindClass:            DefaultFindClass,
		CaseSensitive:        true,
		PreserveCase:         false,
	}
}

// normalize fills unset fields that have no usable zero value.
func (c Config) normalize() Config {
	if c.FindClass == "" {
		c.FindClass = DefaultFindClass
	}
	return c
}
