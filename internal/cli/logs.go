package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/logtail"
)

func addLogs(topLevel *cobra.Command, ro *RootOptions) {
	var (
		lines int
		level string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the dex log file.",
		Example: `
dex logs
dex logs -n 200 --level warn
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(ro.ConfigPath)
			if err != nil {
				return err
			}
			if cfg.LogFile == "" {
				return fmt.Errorf("logging is disabled (log_file is empty)")
			}
			tail, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range logtail.ColorizeLines(logtail.MinLevel(tail, level)) {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to print, 0 for all.")
	cmd.Flags().StringVar(&level, "level", "", "Hide records below this level.")
	topLevel.AddCommand(cmd)
}
