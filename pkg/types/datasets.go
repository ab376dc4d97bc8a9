package types

// Standard dataset names seeded by the store.
const (
	DatasetHoldings  = "holdings"
	DatasetCompanies = "companies"
	DatasetReports   = "reports"
)

// StandardDatasetNames lists all standard datasets for enumeration.
var StandardDatasetNames = []string{
	DatasetHoldings,
	DatasetCompanies,
	DatasetReports,
}

// ESGRatings is the rating scale from worst to best.
var ESGRatings = []string{"CCC", "B", "BB", "BBB", "A", "AA", "AAA"}

// ReportStatuses is the report workflow from first to last stage.
var ReportStatuses = []string{"draft", "in_review", "validated", "published"}

// OrdinalComparator orders string values by their position in order.
// Values outside order sort before every listed value, and nil sorts first.
func OrdinalComparator(order ...string) Comparator {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	pos := func(v any) int {
		if v == nil {
			return -2
		}
		s, ok := v.(string)
		if !ok {
			return -1
		}
		if r, ok := rank[s]; ok {
			return r
		}
		return -1
	}
	return func(a, b any) int {
		return pos(a) - pos(b)
	}
}

// standardColumns holds the declared columns of each standard dataset.
var standardColumns = map[string][]ColumnSpec{
	DatasetHoldings: {
		{Key: "name", Label: "Holding", Sortable: true, Searchable: true},
		{Key: "ticker", Label: "Ticker", Sortable: true, Searchable: true},
		{Key: "sector", Label: "Sector", Sortable: true, Searchable: true},
		{Key: "country", Label: "Country", Sortable: true, Searchable: true},
		{Key: "weight", Label: "Weight %", Sortable: true, Aggregate: true},
		{Key: "value", Label: "Value", Sortable: true, Aggregate: true},
		{Key: "esg_score", Label: "ESG", Sortable: true, Aggregate: true},
		{Key: "carbon_intensity", Label: "tCO2e/$M", Sortable: true, Aggregate: true},
		{Key: "rating", Label: "Rating", Sortable: true, Compare: OrdinalComparator(ESGRatings...)},
	},
	DatasetCompanies: {
		{Key: "name", Label: "Company", Sortable: true, Searchable: true},
		{Key: "sector", Label: "Sector", Sortable: true, Searchable: true},
		{Key: "industry", Label: "Industry", Sortable: true, Searchable: true},
		{Key: "country", Label: "Country", Sortable: true, Searchable: true},
		{Key: "esg_rating", Label: "Rating", Sortable: true, Compare: OrdinalComparator(ESGRatings...)},
		{Key: "esg_score", Label: "ESG", Sortable: true, Aggregate: true},
		{Key: "market_cap", Label: "Mkt cap $B", Sortable: true, Aggregate: true},
		{Key: "controversy", Label: "Controversy", Sortable: true, Compare: OrdinalComparator("low", "medium", "high", "severe")},
	},
	DatasetReports: {
		{Key: "title", Label: "Title", Sortable: true, Searchable: true},
		{Key: "framework", Label: "Framework", Sortable: true, Searchable: true},
		{Key: "period", Label: "Period", Sortable: true, Searchable: true},
		{Key: "status", Label: "Status", Sortable: true, Compare: OrdinalComparator(ReportStatuses...)},
		{Key: "pages", Label: "Pages", Sortable: true, Aggregate: true},
		{Key: "issues", Label: "Issues", Sortable: true, Aggregate: true},
		{Key: "updated_at", Label: "Updated", Sortable: true},
	},
}

// StandardColumns returns a copy of the declared columns for a standard
// dataset, or nil for any other name.
func StandardColumns(dataset string) []ColumnSpec {
	cols, ok := standardColumns[dataset]
	if !ok {
		return nil
	}
	out := make([]ColumnSpec, len(cols))
	copy(out, cols)
	return out
}
