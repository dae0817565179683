// Package bibtex splits BibTeX text into entries and parses each entry into a
// publication record.
package bibtex

import (
	"regexp"
	"strings"
)

// entryStart matches an entry header opening such as "@article{" or "@Book {".
var entryStart = regexp.MustCompile(`^@[A-Za-z]+\s*\{`)

// SplitEntries returns the top-level entries of s in source order. An entry
// starts at '@' followed by a type tag and '{', and ends at the brace that
// brings the depth back to zero. An entry that is never closed runs to the end
// of the input.
func SplitEntries(s string) []string {
	var out []string
	i := 0
	n := len(s)
	for i < n {
		at := strings.IndexByte(s[i:], '@')
		if at < 0 {
			break
		}
		at += i
		if !entryStart.MatchString(s[at:]) {
			// stray '@' in free text; retry from the next character
			i = at + 1
			continue
		}
		open := at + strings.IndexByte(s[at:], '{')
		end := matchBrace(s, open)
		if end < 0 {
			end = n
		}
		out = append(out, strings.TrimSpace(s[at:end]))
		i = end
	}
	return out
}

// matchBrace returns the index just past the brace closing the one at open,
// or -1 when the input ends first.
func matchBrace(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return -1
}
