package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/dex/internal/app"
	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
)

const statBarWidth = 30

func addShow(topLevel *cobra.Command, ro *RootOptions) {
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Print one record.",
		Example: `
dex show 25
dex show mr-mime --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(ro, func(rt *app.Runtime) error {
				record, err := rt.Client.FetchRecordByID(cmd.Context(), args[0])
				if err != nil {
					if pokeapi.IsNotFound(err) {
						return fmt.Errorf("no record named %q", args[0])
					}
					return err
				}
				out := cmd.OutOrStdout()
				if oo.JSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(toView(record))
				}
				writeRecord(out, record)
				return nil
			})
		},
	}

	AddOutputArg(cmd.Flags(), oo)
	topLevel.AddCommand(cmd)
}

func writeRecord(w io.Writer, r catalog.Record) {
	bold := color.New(color.Bold).SprintFunc()

	_, _ = fmt.Fprintf(w, "%s  #%04d\n", bold(r.Name), r.ID)
	_, _ = fmt.Fprintln(w, colorTypes(r.Types))
	_, _ = fmt.Fprintln(w)

	info := uitable.New()
	info.Separator = "  "
	info.Wrap = true
	info.MaxColWidth = 60
	if len(r.Abilities) > 0 {
		info.AddRow(bold("Abilities"), strings.Join(r.Abilities, ", "))
	}
	if r.Artwork != "" {
		info.AddRow(bold("Artwork"), r.Artwork)
	}
	if len(info.Rows) > 0 {
		_, _ = fmt.Fprintln(w, info)
		_, _ = fmt.Fprintln(w)
	}

	if len(r.Stats) == 0 {
		return
	}
	stats := uitable.New()
	stats.Separator = "  "
	total := 0
	for _, s := range r.Stats {
		total += s.Value
		stats.AddRow(catalog.StatLabel(s.Name), s.Value, statBar(s, statBarWidth))
	}
	stats.AddRow(bold("total"), total, "")
	_, _ = fmt.Fprintln(w, stats)
}
