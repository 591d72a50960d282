package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/dex/internal/app"
)

// ErrNoTerminal is returned when the interactive UI is requested without a TTY.
var ErrNoTerminal = errors.New("the interactive browser needs a terminal; use `dex list` or `dex show` for scripting")

// New builds the dex command tree. Running dex with no subcommand starts the
// interactive browser.
func New(ctx context.Context) *cobra.Command {
	ro := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Browse the creature catalog in your terminal.",
		Long: "dex fetches the full catalog once, then lets you search by name, " +
			"filter by type, page through results and open any record.",
		Example: `
dex
dex list --type fire --search char
dex show pikachu
dex types
dex logs
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(os.Stdout) {
				return ErrNoTerminal
			}
			return app.Run(ctx, ro.AppOptions())
		},
	}
	cmd.SetContext(ctx)
	AddRootArgs(cmd.PersistentFlags(), ro)

	addList(cmd, ro)
	addShow(cmd, ro)
	addTypes(cmd)
	addLogs(cmd, ro)
	return cmd
}

func interactive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// withRuntime runs fn with a configured runtime and releases it afterwards.
func withRuntime(ro *RootOptions, fn func(rt *app.Runtime) error) error {
	rt, err := app.Setup(ro.AppOptions())
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()
	return fn(rt)
}
