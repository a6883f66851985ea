// Package ui holds the terminal styling shared by the hexgarden commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Palette
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Hex is the glyph printed in banners.
const Hex = "⬢"

// Banner prints the command banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s: %s\n\n", Brand.Sprint(Hex), Brand.Sprint("hexgarden"), subtitle)
}

// KV prints an aligned key/value line.
func KV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s  %v\n", Info.Sprintf("%-12s", key), value)
}

// Table prints a simple aligned table. Nothing is printed for no rows.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var head, sep strings.Builder
	head.WriteString("  ")
	sep.WriteString("  ")
	for i, h := range headers {
		fmt.Fprintf(&head, "%-*s  ", widths[i], h)
		sep.WriteString(strings.Repeat("─", widths[i]) + "  ")
	}
	Subtle.Fprintln(w, strings.TrimRight(head.String(), " "))
	Subtle.Fprintln(w, strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var line strings.Builder
		line.WriteString("  ")
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(&line, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// StatusIcon returns a check or cross.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
