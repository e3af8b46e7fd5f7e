package main

import (
	"fmt"
	"os"

	"tagback-server/cmd/tagctl/cli"
	"tagback-server/internal/infra/node"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: node.Version,
		Commit:  node.CommitHash,
	})

	root.AddCommand(cli.NewSeedCommand())
	root.AddCommand(cli.NewTagTypesCommand())
	root.AddCommand(cli.NewCodesCommand())
	root.AddCommand(cli.NewEventsCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
