package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/tabview"
	"github.com/mesh-intelligence/tabview/pkg/types"
)

// listFlags holds the view controls of `tabview list`.
type listFlags struct {
	search   string
	facets   []string
	sorts    []string
	page     int
	pageSize int
}

func newListCmd(s *session) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list <dataset>",
		Short: "Show one page of a dataset",
		Long: `List filters, searches, sorts and pages a dataset.

Facets are exact key=value matches ANDed together; values that parse as
JSON are typed (10 is a number, "10" a string). The search term matches
any searchable column, ignoring case. Each --sort is one toggle of that
column: the first sorts ascending, a second on the same column descending.
Pages are numbered from 1; out-of-range pages show the nearest page.

Example:
  tabview list holdings
  tabview list holdings --facet sector=Energy --sort weight --sort weight
  tabview list companies --search "oil & gas" --page 2 --page-size 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			ds, err := openDataset(backend, args[0])
			if err != nil {
				return err
			}
			columns := ds.Columns()
			v, err := s.buildView(ds, columns, f)
			if err != nil {
				return err
			}
			result := v.GetView()

			if s.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return renderView(cmd.OutOrStdout(), columns, result, v.State().Sort)
		},
	}

	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive search over searchable columns")
	cmd.Flags().StringArrayVar(&f.facets, "facet", nil, "facet filter key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.sorts, "sort", nil, "toggle sort on a column (repeatable)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page (default from config)")

	return cmd
}

// buildView loads every record of ds into a view and applies the flags in
// order: search, facets, sort toggles, page.
func (s *session) buildView(ds types.Dataset, columns []types.ColumnSpec, f listFlags) (types.TableView, error) {
	records, err := ds.Fetch(nil)
	if err != nil {
		return nil, sysError("fetch %s: %w", ds.Name(), err)
	}

	cfg := s.settings.storeConfig("")
	pageSize := cfg.EffectivePageSize()
	if f.pageSize != 0 {
		pageSize = f.pageSize
	}

	tv, err := tabview.NewView(records, columns,
		tabview.WithPageSize(pageSize),
		tabview.WithLocale(cfg.LanguageTag()),
		tabview.WithLogger(s.logger.Named("view")),
	)
	if errors.Is(err, types.ErrInvalidPageSize) {
		return nil, userError("invalid --page-size %d: %w", f.pageSize, err)
	}
	if err != nil {
		return nil, sysError("build view of %s: %w", ds.Name(), err)
	}

	tv.SetSearchTerm(f.search)
	for _, arg := range f.facets {
		key, value, err := parseFacet(arg)
		if err != nil {
			return nil, userError("%w", err)
		}
		tv.SetFacetFilter(key, types.Only(value))
	}
	for _, key := range f.sorts {
		tv.ToggleSort(key)
	}
	tv.SetPage(max(f.page, 1) - 1)

	return tv, nil
}
