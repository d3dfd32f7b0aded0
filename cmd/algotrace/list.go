package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/internal/output"
)

func newListCommand(a *app) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := catalog.All()
			if family != "" {
				entries = catalog.ByFamily(catalog.Family(family))
				if len(entries) == 0 {
					return fmt.Errorf("unknown family %q (want one of %v)", family, catalog.Families)
				}
			}

			return a.write(cmd, func(out *output.Writer) error {
				if err := out.Heading(fmt.Sprintf("%-10s %-11s %-15s %-17s %s", "FAMILY", "ID", "NAME", "TIME", "SPACE")); err != nil {
					return err
				}
				for _, e := range entries {
					line := fmt.Sprintf("%-10s %-11s %-15s %-17s %s", e.Family, e.ID, e.Name, e.Time, e.Space)
					if err := out.Item(e, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list one family: sorting, searching, graph, tree or dp")

	return cmd
}
