package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/rohanthewiz/rroute"
	"github.com/spf13/cobra"
)

func resolveCmd(opts *rootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "resolve <route>...",
		Short: "Resolve routes against the route table",
		Long: `Resolve each route and print the matched pattern, its target and the
merged parameters. Exits non-zero if any route does not resolve.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRouter(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var unresolved int
			for _, route := range args {
				m, err := r.Match(route)
				if err != nil {
					unresolved++
					fmt.Fprintf(out, "%s\tnot found\n", route)
					continue
				}

				if dump {
					spew.Fdump(out, m)
					continue
				}
				printMatch(out, route, m)
			}

			if unresolved > 0 {
				return fmt.Errorf("%w: %d of %d routes", rroute.ErrNotFound, unresolved, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the full match structure")

	return cmd
}

func printMatch(out io.Writer, route string, m rroute.Match) {
	fmt.Fprintf(out, "%s\t%s\t%s\n", route, m.Pattern, m.Target)

	keys := make([]string, 0, len(m.Params))
	for k := range m.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "  %s=%s\n", k, m.Params[k])
	}
}
