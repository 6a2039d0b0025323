package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richtext/text"
)

// Attribute names understood by DefaultConfig.
const (
	AttrBold          = "bold"
	AttrItalic        = "italic"
	AttrUnderline     = "underline"
	AttrStrikethrough = "strikethrough"
	AttrFaint         = "faint"
	AttrForeground    = "fg"
	AttrBackground    = "bg"
)

const DefaultTabWidth = 4

// StyleFunc derives the style for one attribute value from st.
type StyleFunc func(st lipgloss.Style, value string) lipgloss.Style

// Config controls rendering.
type Config struct {
	// Base is the style of text with no mapped attributes.
	Base lipgloss.Style
	// Cursor is inherited over the run style at the cursor position.
	Cursor lipgloss.Style
	// Styles maps attribute names to style functions. Attributes without an
	// entry do not affect the style.
	Styles map[string]StyleFunc

	TabWidth int // default: DefaultTabWidth
}

// DefaultConfig maps the Attr* names. Flag attributes take strconv.ParseBool
// values; fg and bg take lipgloss colors.
func DefaultConfig() Config {
	return Config{
		Base:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Styles: DefaultStyles(),
	}
}

func DefaultStyles() map[string]StyleFunc {
	return map[string]StyleFunc{
		AttrBold:          func(st lipgloss.Style, v string) lipgloss.Style { return st.Bold(flag(v)) },
		AttrItalic:        func(st lipgloss.Style, v string) lipgloss.Style { return st.Italic(flag(v)) },
		AttrUnderline:     func(st lipgloss.Style, v string) lipgloss.Style { return st.Underline(flag(v)) },
		AttrStrikethrough: func(st lipgloss.Style, v string) lipgloss.Style { return st.Strikethrough(flag(v)) },
		AttrFaint:         func(st lipgloss.Style, v string) lipgloss.Style { return st.Faint(flag(v)) },
		AttrForeground:    func(st lipgloss.Style, v string) lipgloss.Style { return st.Foreground(lipgloss.Color(v)) },
		AttrBackground:    func(st lipgloss.Style, v string) lipgloss.Style { return st.Background(lipgloss.Color(v)) },
	}
}

func flag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return c.TabWidth
}

// StyleFor returns Base with the style functions of attrs applied in key
// order.
func (c Config) StyleFor(attrs text.Attributes) lipgloss.Style {
	st := c.Base
	for _, k := range attrs.Keys() {
		if fn, ok := c.Styles[k]; ok {
			st = fn(st, attrs[k])
		}
	}
	return st
}
