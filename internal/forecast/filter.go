package forecast

import (
	"errors"

	"github.com/iwvelando/sales-forecast/internal/dataset"
)

// ErrNoMatch indicates a non-trivial selection filtered out every record.
// Recoverable only by the user changing filters; the pipeline halts before
// aggregation and surfaces this rather than crashing.
var ErrNoMatch = errors.New("no records match the current filters")

// Selection holds the accepted values per filter dimension. An empty slice
// imposes no constraint on its dimension ("all values"), which is distinct
// from selecting the empty string. Selections are ephemeral; one is built per
// interaction and discarded after the pipeline run it drove.
type Selection struct {
	Countries []string `json:"countries"`
	Clients   []string `json:"clients"`
	Products  []string `json:"products"`
}

// IsEmpty reports whether no dimension carries a constraint.
func (s Selection) IsEmpty() bool {
	return len(s.Countries) == 0 && len(s.Clients) == 0 && len(s.Products) == 0
}

// toSet converts a selection list to a membership set, dropping blank entries.
// A nil result means the dimension is unconstrained.
func toSet(values []string) map[string]struct{} {
	var set map[string]struct{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{})
		}
		set[v] = struct{}{}
	}
	return set
}

// matches reports whether the value passes the set; a nil set passes everything.
func matches(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

// Apply returns the subset of records satisfying every non-empty dimension
// selection (AND across dimensions, OR within a dimension's value set). An
// all-empty selection returns the full record set. Returns ErrNoMatch when
// the subset is empty.
func Apply(records []dataset.Record, sel Selection) ([]dataset.Record, error) {
	countries := toSet(sel.Countries)
	clients := toSet(sel.Clients)
	products := toSet(sel.Products)

	matched := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if !matches(countries, r.Country) {
			continue
		}
		if !matches(clients, r.Client) {
			continue
		}
		if !matches(products, r.Product) {
			continue
		}
		matched = append(matched, r)
	}

	if len(matched) == 0 {
		return nil, ErrNoMatch
	}
	return matched, nil
}
