package names

import (
	"regexp"
	"strings"
)

// authorSep separates people in a BibTeX author list.
var authorSep = regexp.MustCompile(`(?i)\s+and\s+`)

// Initials converts a given name string into spaced initials: "Jane Q" -> "J. Q.".
func Initials(given string) string {
	given = strings.TrimSpace(given)
	if given == "" {
		return ""
	}
	var out []string
	for _, w := range strings.Fields(given) {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		out = append(out, strings.ToUpper(string(r[0]))+".")
	}
	return strings.Join(out, " ")
}

// FormatAuthors renders a BibTeX author field as a comma-separated list.
// "Family, Given Middle" names become "Family G. M."; names written without a
// comma are kept as they are.
func FormatAuthors(raw string) string {
	if raw == "" {
		return ""
	}
	parts := authorSep.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		i := strings.Index(p, ",")
		if i < 0 {
			out = append(out, p)
			continue
		}
		family := strings.TrimSpace(p[:i])
		out = append(out, strings.TrimSpace(family+" "+Initials(p[i+1:])))
	}
	return strings.Join(out, ", ")
}
