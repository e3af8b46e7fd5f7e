package cli

import (
	"fmt"
	"text/tabwriter"

	"tagback-server/cmd/api/wire"

	"github.com/spf13/cobra"
)

func NewTagTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag-types",
		Short: "Inspect the tag type catalog",
	}

	cmd.AddCommand(newTagTypesListCommand())

	return cmd
}

func newTagTypesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tag types in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			activeOnly, _ := cmd.Flags().GetBool("active")

			service, err := wire.InitializeTagTypeService()
			if err != nil {
				return fmt.Errorf("initializing tag types: %w", err)
			}

			tagTypes, err := service.ListTagTypes(cmd.Context(), activeOnly)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tACTIVE\tFIELDS\tID")
			for _, tagType := range tagTypes {
				fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%s\n",
					tagType.Slug, tagType.Name, tagType.IsActive, len(tagType.Fields()), tagType.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Bool("active", false, "only list active tag types")

	return cmd
}
