// Command rroute loads a route table from a config file and resolves routes
// against it.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.LogErr(err, "rroute failed")
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	config  string
	schemes []string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rroute",
		Short: "Resolve URL-like routes against a route table",
		Long: `rroute loads route patterns from a YAML or TOML file and resolves
routes such as "myapp://user/42?tab=posts" against them.

Examples:
  rroute resolve "myapp://user/42?tab=posts"
  rroute resolve --dump /about
  rroute routes --html > routes.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "rroute.yaml", "Route table file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringSliceVar(&opts.schemes, "scheme", nil, "Additional URL scheme to strip (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log registration and resolution details")

	rootCmd.AddCommand(
		resolveCmd(opts),
		routesCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// loadRouter builds a router from the configured route table.
func loadRouter(cmd *cobra.Command, opts *rootOptions) (*rroute.Router, error) {
	cfg, err := rroute.LoadConfig(opts.config)
	if err != nil {
		return nil, err
	}

	level := log.WarnLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	lg := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "rroute",
		Level:  level,
	})

	r, err := rroute.NewFromConfig(cfg, rroute.Options{Schemes: opts.schemes, Logger: lg})
	if err != nil {
		return nil, serr.Wrap(err, "config", opts.config)
	}
	return r, nil
}
