package dates

import (
	"regexp"
	"unicode"
)

var fourDigits = regexp.MustCompile(`\p{Nd}{4}`)

// ExtractYear returns the first run of four decimal digits in s as a year, or
// nil when s holds none ("n.d.", "", "in press"). Digits from any script count,
// so "٢٠٢٣" is 2023.
func ExtractYear(s string) *int {
	m := fourDigits.FindString(s)
	if m == "" {
		return nil
	}
	y := 0
	for _, r := range m {
		d := digitValue(r)
		if d < 0 {
			return nil
		}
		y = y*10 + d
	}
	return &y
}

// digitValue returns the decimal value of r, or -1 if r is not in Nd.
// Every Nd range is made of consecutive 0-9 blocks starting at its low end.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10
		}
	}
	return -1
}
