package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencySymbolRe = regexp.MustCompile(`(?i)(₹|\$|€|£|Rs\.?|INR)`)
	amountPrefixRe   = regexp.MustCompile(`(?i)^(amount:|total:|balance:)\s*`)
	numberRe         = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	creditSuffixRe   = regexp.MustCompile(`(?i)\s*CR$`)
	debitSuffixRe    = regexp.MustCompile(`(?i)\s*(DR|DB)$`)

	// Word multipliers used by some issuers for limits ("5.5 lakhs"). Only the
	// spelled-out words count; a bare trailing "CR" is always a credit marker.
	lakhRe  = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(?:lakh|lac)s?$`)
	croreRe = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*crores?$`)
)

// Currency normalizes a raw amount string into a signed decimal. It strips
// currency symbols and thousands separators, treats parentheses and a leading
// minus as negative, and interprets a trailing CR as credit (negative) and
// DR/DB as debit (positive). Non-numeric remainders yield ok=false.
func Currency(raw string) (decimal.Decimal, bool) {
	s := strings.Join(strings.Fields(raw), " ")
	s = amountPrefixRe.ReplaceAllString(s, "")
	s = currencySymbolRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	credit := creditSuffixRe.MatchString(s)
	if credit {
		s = creditSuffixRe.ReplaceAllString(s, "")
	} else if debitSuffixRe.MatchString(s) {
		s = debitSuffixRe.ReplaceAllString(s, "")
	}

	if v, ok := wordAmount(s); ok {
		if credit {
			v = v.Neg()
		}
		return v, true
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	if !numberRe.MatchString(s) {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, false
	}
	if negative || credit {
		v = v.Neg()
	}
	return v, true
}

var amountInTextRe = regexp.MustCompile(
	`(?i)(₹|\$|€|£|Rs\.?\s?|INR\s?)?\(?-?\d{1,3}(,\d{2,3})*(\.\d{1,2})?\)?(\s?(CR|DR|DB)\b)?`)

// CurrencyInText finds the first amount-shaped token inside a longer string
// and normalizes it, keeping any trailing CR/DR marker next to the number.
func CurrencyInText(text string) (decimal.Decimal, bool) {
	m := amountInTextRe.FindString(text)
	if m == "" {
		return decimal.Zero, false
	}
	return Currency(m)
}

func wordAmount(s string) (decimal.Decimal, bool) {
	if m := croreRe.FindStringSubmatch(s); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v.Mul(decimal.NewFromInt(10000000)), true
		}
	}
	if m := lakhRe.FindStringSubmatch(s); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v.Mul(decimal.NewFromInt(100000)), true
		}
	}
	return decimal.Zero, false
}
