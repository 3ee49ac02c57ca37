package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/bigo/complexity"
)

func newCatalogCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the complexity classes in rank order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output
			}
			entries := complexity.Entries()

			switch outputFormat {
			case OutputJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(entries)
			case OutputTable:
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "RANK\tNOTATION\tNAME")
				for _, e := range entries {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Rank, e.Notation, e.Name)
				}

				return tw.Flush()
			default:
				return fmt.Errorf("invalid output format %q", outputFormat)
			}
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", OutputTable, "output format: table or json")

	return cmd
}
