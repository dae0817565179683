package bibtex

import (
	"reflect"
	"testing"

	"bib2json/src/internal/schema"
)

func TestParseEntryScenario(t *testing.T) {
	raw := "@article{k1, title={Hello}, author={Doe, Jane}, year={2020}}"
	got := ParseEntry(raw)
	year := 2020
	want := schema.Record{
		Type:     schema.Journal,
		Year:     &year,
		Title:    "Hello",
		Authors:  "Doe J.",
		Keywords: []string{},
		BibTeX:   raw,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseEntry=%+v want %+v", got, want)
	}
}

func TestParseHeader(t *testing.T) {
	e := Parse("@InProceedings{ smith2020 ,\n title = {X}}")
	if e.Type != "inproceedings" || e.Key != "smith2020" {
		t.Fatalf("header: got type=%q key=%q", e.Type, e.Key)
	}
	if e.Get("title") != "X" {
		t.Fatalf("title: got %q", e.Get("title"))
	}
}

func TestParseBadHeaderDegrades(t *testing.T) {
	e := Parse("@article{title = {No Key}}")
	if e.Type != "misc" || e.Key != "" {
		t.Fatalf("expected misc fallback, got type=%q key=%q", e.Type, e.Key)
	}
	if e.Get("title") != "No Key" {
		t.Fatalf("fields should still parse, got %q", e.Get("title"))
	}
	r := ParseEntry("@article{title = {No Key}}")
	if r.Type != schema.Working || r.Title != "No Key" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestTokenizeFields(t *testing.T) {
	body := `k1,
  title = {A {Study}, of X},
  Journal = "Annals, of Things",
  year = 2021,
  note = {He said "hi, there"},
  pages = "1--{2}",
  garbage,
  title = {Second}`
	got := tokenizeFields(body)
	want := map[string]string{
		"title":   "Second",
		"journal": "Annals, of Things",
		"year":    "2021",
		"note":    `He said "hi, there"`,
		"pages":   "1--{2}",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokenizeFields=%q want %q", got, want)
	}
}

func TestNestedBracesKeepFollowingFields(t *testing.T) {
	r := ParseEntry("@article{k, title = {A {Study} of X}, journal = {J}, year = {1999}}")
	if r.Title != "A {Study} of X" {
		t.Fatalf("title: %q", r.Title)
	}
	if r.Venue != "J" || r.Year == nil || *r.Year != 1999 {
		t.Fatalf("following fields lost: %+v", r)
	}
}

func TestUnbalancedCloseBraceFloorsDepth(t *testing.T) {
	got := tokenizeFields("k, a = x}, b = {y}")
	if got["a"] != "x}" || got["b"] != "y" {
		t.Fatalf("unexpected fields: %q", got)
	}
}

func TestCleanValue(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{Hello}", "Hello"},
		{`"Hello"`, "Hello"},
		{`{"Quoted"}`, "Quoted"},
		{"{{Double}}", "{Double}"},
		{"  bare  ", "bare"},
		{"{multi\n   line\ttext}", "multi line text"},
		{"{", "{"},
		{`"`, ""},
		{"{}", ""},
		{"{A} and {B}", "A} and {B"},
	}
	for _, c := range cases {
		if got := cleanValue(c.in); got != c.want {
			t.Fatalf("cleanValue(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestParseEntryFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want func(r schema.Record) bool
	}{
		{"url wins over doi", "@misc{k, url = {http://x}, doi = {10.1/y}}", func(r schema.Record) bool { return r.Link == "http://x" }},
		{"doi link", "@misc{k, doi = {10.1/y}}", func(r schema.Record) bool { return r.Link == "https://doi.org/10.1/y" }},
		{"no link", "@misc{k, title = {T}}", func(r schema.Record) bool { return r.Link == "" }},
		{"keywords", "@misc{k, keywords = {ai; ml, nlp}}", func(r schema.Record) bool {
			return reflect.DeepEqual(r.Keywords, []string{"ai", "ml", "nlp"})
		}},
		{"year with prefix", "@misc{k, year = {c. 2023}}", func(r schema.Record) bool { return r.Year != nil && *r.Year == 2023 }},
		{"year in arabic-indic digits", "@misc{k, year = {٢٠٢٣}}", func(r schema.Record) bool { return r.Year != nil && *r.Year == 2023 }},
		{"year absent", "@misc{k, year = {n.d.}}", func(r schema.Record) bool { return r.Year == nil }},
		{"venue booktitle", "@inproceedings{k, booktitle = {Conf}, institution = {I}}", func(r schema.Record) bool {
			return r.Venue == "Conf" && r.Type == schema.Conference
		}},
		{"venue institution", "@techreport{k, institution = {Lab}}", func(r schema.Record) bool {
			return r.Venue == "Lab" && r.Type == schema.Report
		}},
		{"authors", "@misc{k, author = {Smith, John Q. and Jane Doe}}", func(r schema.Record) bool {
			return r.Authors == "Smith J. Q., Jane Doe"
		}},
		{"unknown type", "@unpublished{k, title = {T}}", func(r schema.Record) bool { return r.Type == schema.Working }},
		{"field names case-insensitive", "@misc{k, TITLE = {Loud}}", func(r schema.Record) bool { return r.Title == "Loud" }},
		{"trailing comma", "@misc{k, title = {T},\n}", func(r schema.Record) bool { return r.Title == "T" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := ParseEntry(c.raw)
			if !c.want(r) {
				t.Fatalf("unexpected record for %q: %+v", c.raw, r)
			}
			if r.BibTeX != c.raw {
				t.Fatalf("bibtex not preserved: %q", r.BibTeX)
			}
		})
	}
}

func TestConvertPreservesOrder(t *testing.T) {
	text := `@article{a, title = {First}}
@book{b, title = {Second}}
@misc{c, title = {Third}}`
	recs := Convert(text)
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if recs[i].Title != want {
			t.Fatalf("record %d: title %q want %q", i, recs[i].Title, want)
		}
	}
	entries := SplitEntries(text)
	for i := range recs {
		if recs[i].BibTeX != entries[i] {
			t.Fatalf("record %d bibtex %q want %q", i, recs[i].BibTeX, entries[i])
		}
	}
}

func TestConvertEmpty(t *testing.T) {
	recs := Convert("")
	if recs == nil || len(recs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", recs)
	}
}
