package normalize

import "regexp"

var (
	maskedPanRe = regexp.MustCompile(`(?:[Xx*•]{2,}\s?)+(\d{4})`)
	tailRe      = regexp.MustCompile(`(\d{4})\D*$`)
	longPanRe   = regexp.MustCompile(`\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?(\d{4})`)
)

// CardTail extracts the last four digits of a card number from masked or
// plain renderings ("XXXX XXXX XXXX 1234", "**** 1234", "1234 5678 9012 3456",
// "ending 1234").
func CardTail(raw string) (string, bool) {
	if m := maskedPanRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if m := longPanRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if m := tailRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}
