package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func routesCmd(opts *rootOptions) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRouter(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if html {
				fmt.Fprintln(out, r.RouteTableHTML())
				return nil
			}

			for _, route := range r.Routes() {
				fmt.Fprintf(out, "%-40s %s\n", route.Pattern, route.HandlerRef)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "Render the route table as an HTML page")

	return cmd
}
