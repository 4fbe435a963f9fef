package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
)

const tablePadding = 2

// writeTable prints rows under headers in aligned columns. Columns listed
// in rightAligned are padded on the left, header included.
func writeTable(out io.Writer, headers []string, rows [][]string, rightAligned ...int) error {
	if len(rightAligned) > 0 {
		headers, rows = alignRight(headers, rows, rightAligned)
	}

	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// alignRight returns copies of headers and rows with the given columns
// left-padded to their widest cell.
func alignRight(headers []string, rows [][]string, columns []int) ([]string, [][]string) {
	widths := make(map[int]int, len(columns))
	measure := func(cells []string) {
		for _, col := range columns {
			if col < len(cells) {
				widths[col] = max(widths[col], runewidth.StringWidth(cells[col]))
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	pad := func(cells []string) []string {
		padded := append([]string(nil), cells...)
		for col, width := range widths {
			if col < len(padded) {
				padded[col] = strings.Repeat(" ", width-runewidth.StringWidth(padded[col])) + padded[col]
			}
		}
		return padded
	}

	outRows := make([][]string, len(rows))
	for i, row := range rows {
		outRows[i] = pad(row)
	}
	return pad(headers), outRows
}

func formatEnabled(value bool) string {
	if value {
		return "enabled"
	}
	return "disabled"
}
