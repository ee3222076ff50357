// Package format renders machine settings, search results and catalogs as
// terminal or Markdown tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// sheet is one go-pretty table bound to the Mode it renders in.
type sheet struct {
	w    table.Writer
	mode Mode
}

func newSheet(m Mode, header ...any) *sheet {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	w.AppendHeader(table.Row(header))
	return &sheet{w: w, mode: m}
}

func (s *sheet) row(vals ...any)    { s.w.AppendRow(table.Row(vals)) }
func (s *sheet) footer(vals ...any) { s.w.AppendFooter(table.Row(vals)) }

// columns applies go-pretty column configs. Wrapping only affects ASCII
// output; Markdown cells stay on one line.
func (s *sheet) columns(cfgs ...table.ColumnConfig) {
	if s.mode == Markdown {
		for i := range cfgs {
			cfgs[i].WidthMax = 0
		}
	}
	s.w.SetColumnConfigs(cfgs)
}

func (s *sheet) String() string {
	if s.mode == Markdown {
		return s.w.RenderMarkdown()
	}
	return s.w.Render()
}

// wrapped caps a free-text column at width, breaking on spaces.
func wrapped(number, width int) table.ColumnConfig {
	return table.ColumnConfig{Number: number, WidthMax: width, WidthMaxEnforcer: text.WrapSoft}
}

// centered is used for single-letter columns such as notches.
func centered(number int) table.ColumnConfig {
	return table.ColumnConfig{Number: number, Align: text.AlignCenter, AlignHeader: text.AlignCenter}
}
