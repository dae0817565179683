package schema

import "strings"

// Type is the publication category a record is listed under.
type Type string

const (
	Journal    Type = "journal"
	Conference Type = "conference"
	Report     Type = "report"
	Working    Type = "working"
)

// Record is one publication as written to the output document.
type Record struct {
	Type     Type     `yaml:"type" json:"type"`
	Year     *int     `yaml:"year" json:"year"`
	Title    string   `yaml:"title" json:"title"`
	Authors  string   `yaml:"authors" json:"authors"`
	Venue    string   `yaml:"venue" json:"venue"`
	Link     string   `yaml:"link" json:"link"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	BibTeX   string   `yaml:"bibtex" json:"bibtex"`
}

// TypeFor maps a BibTeX entry type tag to its publication category.
// Unknown tags fall back to Working.
func TypeFor(tag string) Type {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "article":
		return Journal
	case "inproceedings", "conference", "proceedings":
		return Conference
	case "techreport", "phdthesis", "mastersthesis":
		return Report
	default:
		return Working
	}
}
