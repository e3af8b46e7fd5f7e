package cli

import (
	"fmt"

	"tagback-server/cmd/api/wire"

	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the predefined tag types that are missing",
		Long: `Registers the predefined pet, luggage, keys and checklist tag types.

Tag types whose slug already exists are left untouched, so running the
command twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := wire.InitializeTagTypeService()
			if err != nil {
				return fmt.Errorf("initializing tag types: %w", err)
			}

			created, err := service.SeedPredefinedTagTypes(cmd.Context())
			if err != nil {
				return err
			}

			for _, tagType := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", tagType.Slug, tagType.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d tag types seeded\n", len(created))
			return nil
		},
	}
}
