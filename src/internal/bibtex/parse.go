package bibtex

import (
	"regexp"
	"strings"

	"bib2json/src/internal/dates"
	"bib2json/src/internal/names"
	"bib2json/src/internal/schema"
	"bib2json/src/internal/stringsx"
)

// header matches "@type{key," at the start of an entry.
var header = regexp.MustCompile(`(?s)^@([A-Za-z]+)\s*\{\s*([^,]*)\s*,`)

// Entry is the raw header and fields of one BibTeX entry.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

// Get returns the cleaned value of field name, or "" when it is missing.
func (e Entry) Get(name string) string { return e.Fields[name] }

// Convert splits text into entries and parses each of them, preserving order.
func Convert(text string) []schema.Record {
	return ParseAll(SplitEntries(text))
}

// ParseAll parses each raw entry into a record, preserving order.
func ParseAll(raw []string) []schema.Record {
	out := make([]schema.Record, 0, len(raw))
	for _, r := range raw {
		out = append(out, ParseEntry(r))
	}
	return out
}

// ParseEntry turns one raw entry into a record. It never fails: missing or
// malformed parts fall back to empty values, an absent year and the "working"
// category.
func ParseEntry(raw string) schema.Record {
	e := Parse(raw)
	link := e.Get("url")
	if link == "" {
		if doi := e.Get("doi"); doi != "" {
			link = "https://doi.org/" + doi
		}
	}
	return schema.Record{
		Type:     schema.TypeFor(e.Type),
		Year:     dates.ExtractYear(e.Get("year")),
		Title:    e.Get("title"),
		Authors:  names.FormatAuthors(e.Get("author")),
		Venue:    stringsx.FirstNonEmpty(e.Get("journal"), e.Get("booktitle"), e.Get("institution")),
		Link:     link,
		Keywords: stringsx.SplitList(e.Get("keywords")),
		BibTeX:   raw,
	}
}

// Parse extracts the type tag, citation key and cleaned fields of raw. An
// unreadable header yields type "misc" and an empty key.
func Parse(raw string) Entry {
	e := Entry{Type: "misc"}
	if m := header.FindStringSubmatch(raw); m != nil {
		e.Type = strings.ToLower(strings.TrimSpace(m[1]))
		e.Key = strings.TrimSpace(m[2])
	}
	e.Fields = tokenizeFields(body(raw))
	return e
}

// body returns the text after the first '{' without the final '}'.
func body(raw string) string {
	b := raw[strings.IndexByte(raw, '{')+1:]
	return strings.TrimSuffix(b, "}")
}

// tokenizeFields splits body on commas that sit outside quotes and braces and
// stores each "name = value" segment. Later fields overwrite earlier ones.
func tokenizeFields(body string) map[string]string {
	fields := map[string]string{}
	var cur strings.Builder
	depth := 0
	inQuote := false
	for _, ch := range body {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case ch == '{':
			depth++
		case ch == '}':
			if depth > 0 {
				depth--
			}
		case ch == ',' && depth == 0 && !inQuote:
			addField(fields, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(ch)
	}
	addField(fields, cur.String())
	return fields
}

func addField(fields map[string]string, seg string) {
	name, val, ok := strings.Cut(strings.TrimSpace(seg), "=")
	if !ok {
		return
	}
	val = strings.TrimSpace(strings.Trim(strings.TrimSpace(val), ","))
	fields[strings.ToLower(strings.TrimSpace(name))] = cleanValue(val)
}

// cleanValue removes one layer of braces, then one layer of quotes, and
// collapses whitespace runs to a single space.
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = unwrap(v, "{", "}")
	v = unwrap(v, `"`, `"`)
	return strings.Join(strings.Fields(v), " ")
}

func unwrap(v, open, close string) string {
	if !strings.HasPrefix(v, open) || !strings.HasSuffix(v, close) {
		return v
	}
	if len(v) < len(open)+len(close) {
		return ""
	}
	return strings.TrimSpace(v[len(open) : len(v)-len(close)])
}
