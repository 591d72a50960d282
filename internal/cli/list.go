package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/dex/internal/app"
	"github.com/five82/dex/internal/browse"
	"github.com/five82/dex/internal/catalog"
)

func addList(topLevel *cobra.Command, ro *RootOptions) {
	fo := &FilterOptions{}
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a filtered page of the catalog.",
		Long: "Fetches the full catalog, applies the name and type filters, and " +
			"prints one page. The load is all-or-nothing: any failed request fails the command.",
		Example: `
dex list
dex list --type water --page 2
dex list --search saur --all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := strings.ToLower(strings.TrimSpace(fo.Category))
			if category != "" && category != catalog.AllCategories && !catalog.KnownType(category) {
				return fmt.Errorf("unknown type %q (see `dex types`)", fo.Category)
			}
			return withRuntime(ro, func(rt *app.Runtime) error {
				records, err := app.LoadCatalog(cmd.Context(), rt.Client, rt.Config.IndexLimit)
				if err != nil {
					return fmt.Errorf("load catalog: %w", err)
				}

				pageSize := rt.Config.PageSize
				if fo.All {
					pageSize = len(records) + 1
				}
				st := browse.New(pageSize, rt.Config.WindowSize)
				st.SetRecords(records)
				st.SetSearch(fo.Search)
				st.SetCategory(category)
				st.SetPage(fo.Page)

				out := cmd.OutOrStdout()
				if oo.JSON {
					return writeListJSON(out, st)
				}
				writeListTable(out, st)
				return nil
			})
		},
	}

	AddFilterArgs(cmd.Flags(), fo)
	AddOutputArg(cmd.Flags(), oo)
	topLevel.AddCommand(cmd)
}

type recordView struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Types     []string   `json:"types"`
	Artwork   string     `json:"artwork,omitempty"`
	Abilities []string   `json:"abilities,omitempty"`
	Stats     []statView `json:"stats,omitempty"`
}

type statView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type listView struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Matching   int          `json:"matching"`
	Total      int          `json:"total"`
	Records    []recordView `json:"records"`
}

func toView(r catalog.Record) recordView {
	v := recordView{ID: r.ID, Name: r.Name, Types: r.Types, Artwork: r.Artwork, Abilities: r.Abilities}
	for _, s := range r.Stats {
		v.Stats = append(v.Stats, statView{Name: s.Name, Value: s.Value})
	}
	return v
}

func writeListJSON(w io.Writer, st *browse.State) error {
	visible := st.Visible()
	view := listView{
		Page:       st.Page(),
		TotalPages: st.TotalPages(),
		Matching:   st.Count(),
		Total:      st.Total(),
		Records:    make([]recordView, 0, len(visible)),
	}
	for _, r := range visible {
		view.Records = append(view.Records, toView(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func writeListTable(w io.Writer, st *browse.State) {
	visible := st.Visible()
	if len(visible) == 0 {
		_, _ = fmt.Fprintln(w, "No matches")
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("NO."), bold("NAME"), bold("TYPES"))
	for _, r := range visible {
		tbl.AddRow(fmt.Sprintf("%04d", r.ID), r.Name, colorTypes(r.Types))
	}
	_, _ = fmt.Fprintln(w, tbl)

	faint := color.New(color.Faint).SprintFunc()
	_, _ = fmt.Fprintln(w, faint(fmt.Sprintf("page %d of %d · %s matching of %s",
		st.Page(), st.TotalPages(),
		humanize.Comma(int64(st.Count())), humanize.Comma(int64(st.Total())),
	)))
}
