package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/dex/internal/catalog"
)

func addTypes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Print the selectable types and their colors.",
		Example: `
dex types
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bold := color.New(color.Bold).SprintFunc()

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("TYPE"), bold("BADGE"), bold("COLOR"))
			for _, name := range catalog.Categories {
				if name == catalog.AllCategories {
					tbl.AddRow(name, swatch(catalog.NeutralBadge.Background, name), "(no filter)")
					continue
				}
				badge := catalog.TypeColor(name)
				tbl.AddRow(name, swatch(badge.Background, name), badge.Background)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
