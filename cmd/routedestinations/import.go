package main

import (
	"github.com/spf13/cobra"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccimport"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Adopt the routes and destinations Cloud Controller knows about",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := setup(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		uaaClient, ccClient, err := buildCCClients(c.config)
		if err != nil {
			return err
		}
		resolver, err := buildResolver(cmd, c.config)
		if err != nil {
			return err
		}

		importer := &ccimport.Importer{
			CCClient:  ccClient,
			UAAClient: uaaClient,
			Updater:   c.updater,
			Resolver:  resolver,
			Actor:     actorFromFlags(cmd.Flags()),
		}
		return importer.ImportOnce(cmd.Context())
	},
}

func init() {
	importCmd.Flags().String("user-guid", "", "guid of the user recorded on audit events")
	importCmd.Flags().String("user-name", "routedestinations-import", "name of the user recorded on audit events")
	importCmd.Flags().String("user-email", "", "email of the user recorded on audit events")
	rootCmd.AddCommand(importCmd)
}
