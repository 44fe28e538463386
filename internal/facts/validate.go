package facts

import (
	"sort"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Validate scans candidate text for fact-shaped tokens and flags any that
// do not trace back to the ledger. A verbatim substring of the source text
// always passes, because the ledger was built from the same patterns over
// the same source. False positives on legitimate generic numbers (for
// example a total-experience figure the source never states as a token)
// are an accepted trade-off of the syntactic approach.
func Validate(ledger types.FactLedger, candidate string) types.Verdict {
	found := scanFacts(candidate)
	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	var unverified []string
	seen := make(map[string]bool)
	for _, f := range found {
		key := normalizeFact(f.text)
		if key == "" || seen[key] {
			continue
		}
		if ledgerHas(ledger, f.kind, key) {
			continue
		}
		seen[key] = true
		unverified = append(unverified, strings.TrimSpace(f.text))
	}

	return types.Verdict{OK: len(unverified) == 0, Unverified: unverified}
}

func ledgerHas(ledger types.FactLedger, kind factKind, key string) bool {
	var set map[string]struct{}
	switch kind {
	case factCompany:
		set = ledger.Companies
	case factDateRange:
		set = ledger.DateRanges
	case factMetric:
		set = ledger.Metrics
	}
	_, ok := set[key]
	return ok
}
