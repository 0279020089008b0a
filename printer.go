// printer.go — text rendering of array values.
//
// Rank 0 prints the single value, rank 1 a space-joined row, rank 2 a
// block of right-aligned columns whose width is the widest formatted
// cell in the whole matrix. Higher ranks fall back to the raveled
// rank-1 rendering. A boxed element prints as <inner>.

package jay

import (
	"strconv"
	"strings"
)

// FormatValue renders an array as user-facing text.
func FormatValue(a *Array) string {
	switch a.Shape.Rank() {
	case 0:
		return formatElem(a.Elems[0])
	case 1:
		return formatRow(a.Elems)
	case 2:
		return formatMatrix(a)
	default:
		return formatRow(a.Elems)
	}
}

func formatElem(e Element) string {
	if e.Tag == ElBox {
		return "<" + FormatValue(e.Box()) + ">"
	}
	return strconv.FormatInt(e.Int(), 10)
}

func formatRow(elems []Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = formatElem(e)
	}
	return strings.Join(parts, " ")
}

func formatMatrix(a *Array) string {
	rows, cols := a.Shape[0], a.Shape[1]

	cells := make([]string, len(a.Elems))
	width := 0
	for i, e := range a.Elems {
		cells[i] = formatElem(e)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := cells[r*cols+c]
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
	}
	return b.String()
}
