package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reqcheck",
		Short: "Validate request documents and report every failure at once",
		Long: `reqcheck validates project documents field by field and reports all
failures keyed by their location, e.g. "options.fields[3]".

Messages are available in every language of the translation catalog.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newCheckCmd())
	return root
}
