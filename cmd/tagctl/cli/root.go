package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type VersionInfo struct {
	Version string
	Commit  string
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "tagctl",
		Short:         "Tagback operator tool",
		Long:          "Seeds the tag type catalog and issues printable tag codes against the configured tagback database.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var writer io.Writer = io.Discard
			if verbose {
				writer = os.Stderr
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(writer, nil)))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	cmd.PersistentFlags().String("environment", "", "overrides general.environment")
	viper.BindPFlag("general.environment", cmd.PersistentFlags().Lookup("environment"))

	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)

	return cmd
}
