package token

import (
	"fmt"
	"strconv"
	"strings"
)

// DescribeIndent renders a whitespace string for error messages, e.g.
// "2 spaces" or "1 tab".  Mixed whitespace is quoted verbatim.
func DescribeIndent(ws string) string {
	var noun string
	switch {
	case !strings.ContainsRune(ws, '\t'):
		noun = "space"
	case !strings.ContainsRune(ws, ' '):
		noun = "tab"
	default:
		return strconv.Quote(ws)
	}
	if len(ws) == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", len(ws), noun)
}
