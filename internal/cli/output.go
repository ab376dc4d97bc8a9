// Table rendering for the tabview CLI.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatCell renders one cell. Aggregated columns get thousands separators.
func formatCell(col types.ColumnSpec, v any) string {
	if f, ok := types.ToFloat(v); ok && col.Aggregate {
		return humanize.CommafWithDigits(f, 2)
	}
	return types.FormatValue(v)
}

// sortMarker marks the heading of the sorted column.
func sortMarker(col types.ColumnSpec, sort types.SortSpec) string {
	if !sort.Active() || sort.Key != col.Key {
		return ""
	}
	if sort.Direction == types.Descending {
		return " ▼"
	}
	return " ▲"
}

// renderView writes one page as a table followed by a summary footer.
func renderView(w io.Writer, columns []types.ColumnSpec, res types.ViewResult, sort types.SortSpec) error {
	tw := newTabWriter(w)

	headings := make([]string, len(columns))
	for i, c := range columns {
		headings[i] = c.Heading() + sortMarker(c, sort)
	}
	fmt.Fprintln(tw, strings.Join(headings, "\t"))

	for _, row := range res.Rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = formatCell(c, row[c.Key])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return renderSummary(w, columns, res)
}

// renderSummary writes the page position, record count, and the sum and
// average of each aggregated column.
func renderSummary(w io.Writer, columns []types.ColumnSpec, res types.ViewResult) error {
	info := res.PageInfo
	page := 0
	if info.TotalPages > 0 {
		page = info.Index + 1
	}
	fmt.Fprintf(w, "\npage %d of %d, %s %s\n",
		page, info.TotalPages,
		humanize.Comma(int64(res.Summary.TotalCount)),
		plural(res.Summary.TotalCount, "record", "records"))

	tw := newTabWriter(w)
	for _, c := range columns {
		if !c.Aggregate {
			continue
		}
		fmt.Fprintf(tw, "%s\tsum %s\tavg %s\n",
			c.Heading(),
			humanize.CommafWithDigits(res.Summary.Sums[c.Key], 2),
			humanize.CommafWithDigits(res.Summary.Averages[c.Key], 2))
	}
	return tw.Flush()
}

// renderDatasets writes the `tabview datasets` table.
func renderDatasets(w io.Writer, infos []datasetInfo) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "DATASET\tRECORDS\tCOLUMNS")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, humanize.Comma(int64(info.Records)), strings.Join(info.Columns, ", "))
	}
	return tw.Flush()
}

// renderFacets writes the `tabview facets` table.
func renderFacets(w io.Writer, key string, counts []types.FacetCount) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s\tCOUNT\n", strings.ToUpper(key))
	for _, fc := range counts {
		value := types.FormatValue(fc.Value)
		if fc.Value == nil {
			value = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", value, humanize.Comma(int64(fc.Count)))
	}
	return tw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
