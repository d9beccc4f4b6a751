package main

import (
	"booktracker/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var e *env

	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Track books in a shared catalog and a personal library",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			e, err = newEnv(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.close()
		},
	}

	getEnv := func() *env { return e }

	root.AddCommand(
		newRegisterCmd(getEnv),
		newLoginCmd(getEnv),
		newLogoutCmd(getEnv),
		newWhoamiCmd(getEnv),
		newCatalogCmd(getEnv),
		newLibraryCmd(getEnv),
		newSeedCmd(getEnv),
	)
	return root
}
