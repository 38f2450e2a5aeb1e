package forecast

import (
	"sort"

	"github.com/iwvelando/sales-forecast/internal/dataset"
)

// OptionSet holds the selectable values for the three filter dimensions under
// the current selections. The dimensions cascade in a fixed order: country
// options never depend on other selections, client options depend on the
// country selection, and product options depend on the country and client
// selections. Empty lists are valid and mean nothing is selectable.
type OptionSet struct {
	Countries []string `json:"countries"`
	Clients   []string `json:"clients"`
	Products  []string `json:"products"`
}

// CountryOptions returns the sorted distinct countries across all records.
func CountryOptions(records []dataset.Record) []string {
	return distinctValues(records, nil, nil, func(r dataset.Record) string { return r.Country })
}

// ClientOptions returns the sorted distinct clients among records consistent
// with the country selection.
func ClientOptions(records []dataset.Record, countries []string) []string {
	return distinctValues(records, toSet(countries), nil, func(r dataset.Record) string { return r.Client })
}

// ProductOptions returns the sorted distinct products among records consistent
// with the country and client selections.
func ProductOptions(records []dataset.Record, countries, clients []string) []string {
	return distinctValues(records, toSet(countries), toSet(clients), func(r dataset.Record) string { return r.Product })
}

// Options resolves all three option lists for the given selection. Each list
// is a pure function of the records and the selections on earlier dimensions;
// the product selection never constrains any list.
func Options(records []dataset.Record, sel Selection) OptionSet {
	return OptionSet{
		Countries: CountryOptions(records),
		Clients:   ClientOptions(records, sel.Countries),
		Products:  ProductOptions(records, sel.Countries, sel.Clients),
	}
}

// distinctValues collects the sorted distinct values of one dimension among
// records whose country and client pass the given sets. Missing (empty)
// values never become options.
func distinctValues(records []dataset.Record, countries, clients map[string]struct{}, value func(dataset.Record) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		if !matches(countries, r.Country) || !matches(clients, r.Client) {
			continue
		}
		v := value(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
