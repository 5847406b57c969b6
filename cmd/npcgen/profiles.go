package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/storage/postgres"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		zone, era string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter postgres.ListFilter
			var err error
			if zone != "" {
				if filter.Zone, err = culture.ParseZone(zone); err != nil {
					return err
				}
			}
			if era != "" {
				if filter.Era, err = culture.ParseEra(era); err != nil {
					return err
				}
			}
			filter.Limit = limit

			return opts.withApp(func(app *App) error {
				ctx := cmd.Context()
				repo, closeDB, err := app.OpenProfiles(ctx)
				if err != nil {
					return err
				}
				defer closeDB()

				stored, err := repo.List(ctx, filter)
				if err != nil {
					return err
				}
				if len(stored) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tZONE\tERA\tROLE\tSAVED")
				for _, sp := range stored {
					p := sp.Profile
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						p.ID, p.Name, p.Zone, p.Era, p.Profession.Role, sp.CreatedAt.Format("2006-01-02 15:04"))
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&zone, "zone", "z", "", "Filter by cultural zone")
	cmd.Flags().StringVarP(&era, "era", "e", "", "Filter by era")
	cmd.Flags().IntVarP(&limit, "limit", "l", postgres.DefaultListLimit, "Maximum number of profiles")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			return opts.withApp(func(app *App) error {
				ctx := cmd.Context()
				repo, closeDB, err := app.OpenProfiles(ctx)
				if err != nil {
					return err
				}
				defer closeDB()

				sp, err := repo.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return writeDocuments(cmd.OutOrStdout(), format, []rendered{{Profile: sp.Profile}})
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
