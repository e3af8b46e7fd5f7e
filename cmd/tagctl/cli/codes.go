package cli

import (
	"fmt"

	"tagback-server/cmd/api/wire"

	"github.com/spf13/cobra"
)

func NewCodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Manage printable tag codes",
	}

	cmd.AddCommand(newCodesIssueCommand())

	return cmd
}

func newCodesIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a batch of unclaimed tag codes",
		Long: `Generates unique codes and stores them as unlinked tags. The codes are
printed one per line, ready to be sent to the printer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			batch, _ := cmd.Flags().GetString("batch")

			issuer, err := wire.InitializeIssuer()
			if err != nil {
				return fmt.Errorf("initializing issuer: %w", err)
			}

			tags, err := issuer.IssueBatch(cmd.Context(), count, batch)
			if err != nil {
				return err
			}

			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag.Code)
			}
			return nil
		},
	}

	cmd.Flags().Int("count", 1, "number of codes to issue")
	cmd.Flags().String("batch", "", "label stored with every issued tag")

	return cmd
}
