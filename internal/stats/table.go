package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/katype/internal/model"
)

type column struct {
	title string
	right bool
}

// textTable lays out rows in columns sized by terminal cell width.
type textTable struct {
	columns    []column
	showHeader bool
	rows       [][]string
}

func historyTable(runs []model.Run) textTable {
	headers := HistoryHeaders()
	cols := make([]column, len(headers))
	for i, h := range headers {
		// Date and Lang are text; the rest are numbers.
		cols[i] = column{title: h, right: i >= 2}
	}
	return textTable{columns: cols, showHeader: true, rows: HistoryRows(runs)}
}

func (t textTable) widths() []int {
	n := len(t.columns)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	if t.showHeader {
		for i, c := range t.columns {
			widths[i] = cellWidth(c.title)
		}
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth(cell))
		}
	}
	return widths
}

func (t textTable) lines() []string {
	widths := t.widths()
	if len(widths) == 0 {
		return nil
	}
	out := make([]string, 0, len(t.rows)+1)
	if t.showHeader {
		titles := make([]string, len(t.columns))
		for i, c := range t.columns {
			titles[i] = c.title
		}
		out = append(out, t.line(titles, widths))
	}
	for _, row := range t.rows {
		out = append(out, t.line(row, widths))
	}
	return out
}

func (t textTable) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		right := i < len(t.columns) && t.columns[i].right
		parts[i] = pad(cell, w, right)
	}
	return strings.Join(parts, " ")
}

func (t textTable) writeTo(w io.Writer) error {
	for _, l := range t.lines() {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func pad(value string, width int, right bool) string {
	gap := width - cellWidth(value)
	if gap <= 0 {
		return value
	}
	if right {
		return strings.Repeat(" ", gap) + value
	}
	return value + strings.Repeat(" ", gap)
}

func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}
