package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/npcgen/internal/game/npc"
)

// DefaultTemplatesDir is where template YAML files are looked up.
const DefaultTemplatesDir = "templates"

func findTemplate(dir, id string) (*npc.Template, error) {
	templates, err := npc.LoadTemplates(dir)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("template %q not found in %s", id, dir)
}

func newTemplatesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List generation templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := npc.LoadTemplates(dir)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tZONE\tERA\tCOUNT\tDESCRIPTION")
			for _, t := range templates {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Zone, t.Era, t.Size(), t.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dir, "templates-dir", DefaultTemplatesDir, "Directory of template YAML files")
	return cmd
}
