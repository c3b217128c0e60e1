package parsers

import (
	"regexp"
	"strings"
)

var columnGapRe = regexp.MustCompile(`[ ]{2,}|\t+`)

// SplitColumns splits a fixed-width document line into its columns. Column
// boundaries are runs of two or more spaces (or tabs); single spaces stay
// inside a column so multi-word values like stock names survive intact.
func SplitColumns(line string) []string {
	var cols []string
	for _, col := range columnGapRe.Split(strings.TrimSpace(line), -1) {
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}
