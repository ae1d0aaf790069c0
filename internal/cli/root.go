// Package cli wires the lookup session into the command line: one-shot
// search commands and an interactive shell.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/player-lookup/internal/render"
)

// Execute runs the lookup command tree with args. Errors are printed to
// errOut before being returned.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := NewRootCommand(in, out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(errOut, describeError(err))
	}
	return err
}

// NewRootCommand builds the lookup command tree.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "lookup",
		Short: "Search a baseball player collection by id, country or name.",
		Long: `lookup fetches the player collection from the player API and filters it locally.

Run a single search with the id, country or name commands, or start an
interactive session with shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.player-lookup.yaml)")
	root.PersistentFlags().String("base-url", "", "player API base URL")
	root.PersistentFlags().String("provider", "", "data source: http or fixture")
	root.PersistentFlags().StringP("loglevel", "l", "", "log level: debug, info, warn, error")

	setup := func(cmd *cobra.Command) (*app, error) {
		cfg, err := loadSettings(cfgFile, cmd.Flags())
		if err != nil {
			return nil, err
		}
		return newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
	}

	var grouped bool
	searchCmd := func(use, short string, run func(ctx context.Context, a *app, arg string) error, nargs cobra.PositionalArgs) *cobra.Command {
		cmd := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  nargs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer a.close()

				if err := run(cmd.Context(), a, strings.Join(args, " ")); err != nil {
					return err
				}
				if grouped {
					a.session.ToggleGroupedView()
				}
				return render.View(a.out, a.session.View())
			},
		}
		cmd.Flags().BoolVarP(&grouped, "grouped", "g", false, "group results by birth country")
		return cmd
	}

	root.AddCommand(
		searchCmd("id <playerId>", "Find a player by id.", func(ctx context.Context, a *app, arg string) error {
			return a.session.SearchByID(ctx, arg)
		}, cobra.ExactArgs(1)),
		searchCmd("country <code>", "List players born in a country (e.g. USA, D.R.).", func(ctx context.Context, a *app, arg string) error {
			return a.session.SearchByCountry(ctx, arg)
		}, cobra.ExactArgs(1)),
		searchCmd("name <text...>", "Find players by first or last name.", func(ctx context.Context, a *app, arg string) error {
			return a.session.SearchByName(ctx, arg)
		}, cobra.MinimumNArgs(1)),
		&cobra.Command{
			Use:   "countries",
			Short: "List the birth countries present in the collection.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer a.close()

				countries, err := a.session.Countries(cmd.Context())
				if err != nil {
					return err
				}
				return render.Countries(a.out, countries)
			},
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Start an interactive lookup session.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer a.close()
				return a.runShell(cmd.Context(), cmd.InOrStdin())
			},
		},
	)
	return root
}
