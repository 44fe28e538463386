package types

// FactLedger holds the atomic, literal facts extracted from a source resume:
// employer names, date ranges, and numeric/percentage metrics. It is built
// once per Resume and read-only thereafter; the owning session discards it
// when the session ends. Keys are normalized (lowercase, collapsed
// whitespace).
type FactLedger struct {
	Companies  map[string]struct{} `json:"-"`
	DateRanges map[string]struct{} `json:"-"`
	Metrics    map[string]struct{} `json:"-"`
}

// NewFactLedger returns an empty ledger with initialized sets.
func NewFactLedger() FactLedger {
	return FactLedger{
		Companies:  make(map[string]struct{}),
		DateRanges: make(map[string]struct{}),
		Metrics:    make(map[string]struct{}),
	}
}

// Merge adds every fact from other into the receiver's sets.
func (l FactLedger) Merge(other FactLedger) {
	for key := range other.Companies {
		l.Companies[key] = struct{}{}
	}
	for key := range other.DateRanges {
		l.DateRanges[key] = struct{}{}
	}
	for key := range other.Metrics {
		l.Metrics[key] = struct{}{}
	}
}

// Verdict is the outcome of validating rewritten text against a FactLedger.
// OK is true when every fact-shaped token in the candidate text traces back
// to the ledger. Unverified lists the tokens that do not.
type Verdict struct {
	OK         bool     `json:"ok"`
	Unverified []string `json:"unverified,omitempty"`
}
