package stringsx

import (
	"regexp"
	"strings"
)

// FirstNonEmpty returns the first string in vals that is non-empty when trimmed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

var listSep = regexp.MustCompile(`[;,]`)

// SplitList splits s on ';' and ',' and returns the trimmed, non-empty pieces
// in order. Duplicates are kept. The result is never nil.
func SplitList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for _, p := range listSep.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
