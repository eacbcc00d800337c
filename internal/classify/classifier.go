// Package classify scores a decoded document against registered issuer
// signatures. Signatures are static configuration loaded once at startup;
// the classifier is safe for unsynchronized concurrent use.
package classify

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
)

// AcceptThreshold is the minimum winning score required to commit to an
// issuer. Below it the unknown sentinel is returned with the sub-threshold
// score, and extraction proceeds with the generic fallback templates.
const AcceptThreshold = 0.30

// Signature describes how to recognize one issuer: a set of phrases expected
// somewhere on the first page, and a weight applied to the matched fraction.
type Signature struct {
	IssuerID   string
	MatchTerms []string
	Weight     float64
}

// Classifier matches documents against an ordered signature list. All terms
// across all signatures are compiled into a single Aho-Corasick matcher so a
// page is scanned once regardless of how many issuers are registered.
type Classifier struct {
	signatures []Signature
	matcher    *ahocorasick.Matcher
	termOwner  []int // term index -> signature index
}

// New builds a classifier. Signature order is significant: score ties are
// broken by registration order, first registered wins.
func New(signatures []Signature) *Classifier {
	var terms []string
	var owner []int
	for si, sig := range signatures {
		for _, t := range sig.MatchTerms {
			terms = append(terms, strings.ToLower(t))
			owner = append(owner, si)
		}
	}
	return &Classifier{
		signatures: signatures,
		matcher:    ahocorasick.NewStringMatcher(terms),
		termOwner:  owner,
	}
}

// Classify returns exactly one issuer ID and a confidence in [0,1]. The
// confidence is the winning score, a relative ranking signal rather than a
// probability. A document that matches nothing returns the unknown sentinel
// with confidence 0.
func (c *Classifier) Classify(doc model.Document) (string, float64) {
	corpus := firstPageCorpus(doc)
	if corpus == "" {
		return constants.IssuerUnknown, 0
	}

	hitsPerSig := make([]int, len(c.signatures))
	for _, termIdx := range c.matcher.Match([]byte(corpus)) {
		hitsPerSig[c.termOwner[termIdx]]++
	}

	best := -1
	bestScore := 0.0
	for si, sig := range c.signatures {
		if len(sig.MatchTerms) == 0 {
			continue
		}
		score := float64(hitsPerSig[si]) / float64(len(sig.MatchTerms)) * sig.Weight
		if score > bestScore {
			best, bestScore = si, score
		}
	}

	bestScore = clamp01(bestScore)
	if best < 0 || bestScore < AcceptThreshold {
		return constants.IssuerUnknown, bestScore
	}
	return c.signatures[best].IssuerID, bestScore
}

func firstPageCorpus(doc model.Document) string {
	var b strings.Builder
	for _, r := range doc.PageRuns(0) {
		b.WriteString(strings.ToLower(r.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BuiltinSignatures returns the registered issuer signatures in registration
// order. Terms are the stable markers each issuer prints on page one:
// brand names, domains, and registration numbers that survive layout changes.
func BuiltinSignatures() []Signature {
	return []Signature{
		{
			IssuerID:   constants.IssuerHDFC,
			MatchTerms: []string{"hdfc bank", "hdfcbank.com", "we understand your world"},
			Weight:     1.0,
		},
		{
			IssuerID:   constants.IssuerICICI,
			MatchTerms: []string{"icici bank", "icicibank.com", "l65190gj1994plc021012"},
			Weight:     1.0,
		},
		{
			IssuerID:   constants.IssuerAxis,
			MatchTerms: []string{"axis bank", "axisbank.com", "my zone"},
			Weight:     1.0,
		},
		{
			IssuerID:   constants.IssuerSBI,
			MatchTerms: []string{"sbi card", "sbicard.com", "gstin of sbi card"},
			Weight:     1.05,
		},
		{
			IssuerID:   constants.IssuerAmex,
			MatchTerms: []string{"american express", "membership number", "membership rewards"},
			Weight:     1.0,
		},
	}
}
