package constants

// Issuer identifies a supported card issuer. Stable values (stored in DB and
// returned over the API).
const (
	IssuerHDFC    = "HDFC"
	IssuerICICI   = "ICICI"
	IssuerAxis    = "AXIS"
	IssuerSBI     = "SBI"
	IssuerAmex    = "AMEX"
	IssuerUnknown = "UNKNOWN" // sentinel: no registered signature matched
)

// Issuers lists the registered issuers in registration order. Classification
// ties are broken by this order, so it must stay deterministic.
var Issuers = []string{IssuerHDFC, IssuerICICI, IssuerAxis, IssuerSBI, IssuerAmex}
