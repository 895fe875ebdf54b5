package export

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiter separates names inside a multi-valued cell. Names are not
// escaped, so a name containing it cannot round-trip.
const Delimiter = "|"

// JoinNames encodes names into one cell, keeping their order.
func JoinNames(names []string) string {
	return strings.Join(names, Delimiter)
}

// SplitNames decodes a cell written by JoinNames. An empty cell is an empty set.
func SplitNames(cell string) []string {
	if cell == "" {
		return []string{}
	}
	return strings.Split(cell, Delimiter)
}

// delimiterPattern matches Delimiter literally. The loader's split takes a
// regular expression.
func delimiterPattern() string {
	return regexp.QuoteMeta(Delimiter)
}

// splitExpr is the loader-side equivalent of SplitNames for column. The
// pattern sits in a single-quoted script literal, so backslashes are doubled.
func splitExpr(column string) string {
	literal := strings.ReplaceAll(delimiterPattern(), `\`, `\\`)
	return fmt.Sprintf("%s.split('%s') as List", column, literal)
}
