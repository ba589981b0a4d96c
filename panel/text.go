package panel

import (
	graphemeutil "github.com/iw2rmb/akshara/internal/grapheme"
)

// caretMark is drawn when the caret sits inside a grapheme cluster, for
// example between a consonant and its matra.
const caretMark = "│"

type textCell struct {
	text   string
	offset int // code point offset of the cell start
	width  int
	marker bool
}

// textRow is one visual row of the text area. A logical line wraps into one
// or more rows; last marks the final one.
type textRow struct {
	cells []textCell
	start int
	end   int
	last  bool
}

// layoutText splits content into visual rows of at most width cells.
// width <= 0 disables wrapping.
func layoutText(content []rune, caret, width int) []textRow {
	var rows []textRow
	lineStart := 0
	for i := 0; i <= len(content); i++ {
		if i < len(content) && content[i] != '\n' {
			continue
		}
		rows = append(rows, wrapLine(content[lineStart:i], lineStart, caret, width)...)
		lineStart = i + 1
	}
	return rows
}

func wrapLine(line []rune, base, caret, width int) []textRow {
	cells := lineCells(line, base, caret)
	if len(cells) == 0 {
		return []textRow{{start: base, end: base, last: true}}
	}

	var rows []textRow
	cur := textRow{start: base}
	used := 0
	for _, c := range cells {
		if width > 0 && used > 0 && used+c.width > width {
			cur.end = c.offset
			rows = append(rows, cur)
			cur = textRow{start: c.offset}
			used = 0
		}
		cur.cells = append(cur.cells, c)
		used += c.width
	}
	cur.end = base + len(line)
	cur.last = true
	return append(rows, cur)
}

func lineCells(line []rune, base, caret int) []textCell {
	clusters := graphemeutil.Clusters(string(line))
	cells := make([]textCell, 0, len(clusters)+2)
	for _, cl := range clusters {
		off := base + cl.Offset
		if caret > off && caret < off+cl.Runes {
			rs := []rune(cl.Text)
			k := caret - off
			head, tail := string(rs[:k]), string(rs[k:])
			cells = append(cells,
				textCell{text: head, offset: off, width: graphemeutil.Width(head)},
				textCell{text: caretMark, offset: caret, width: 1, marker: true},
				textCell{text: tail, offset: caret, width: graphemeutil.Width(tail)},
			)
			continue
		}
		cells = append(cells, textCell{text: cl.Text, offset: off, width: cl.Width})
	}
	return cells
}

// caretRow returns the index of the row that displays caret.
func caretRow(rows []textRow, caret int) int {
	for i, r := range rows {
		if caret < r.start {
			continue
		}
		if caret < r.end || (caret == r.end && r.last) {
			return i
		}
	}
	if len(rows) == 0 {
		return 0
	}
	return len(rows) - 1
}

// offsetAt maps a cell within row to the code point offset of the cluster
// drawn there. Cells past the end of the row map to the row end.
func offsetAt(row textRow, x int) int {
	if x < 0 {
		x = 0
	}
	acc := 0
	for _, c := range row.cells {
		if c.width <= 0 {
			continue
		}
		if x < acc+c.width {
			return c.offset
		}
		acc += c.width
	}
	return row.end
}
