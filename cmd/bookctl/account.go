package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			u, err := e.users.Register(args[0], args[1])
			if err != nil {
				return err
			}
			if err := e.marker.Save(u.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", u.Username)
			return nil
		},
	}
}

func newLoginCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and remember the user for later commands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			u, err := e.users.Authenticate(args[0], args[1])
			if err != nil {
				return err
			}
			if err := e.marker.Save(u.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", u.Username, u.Role)
			return nil
		},
	}
}

func newLogoutCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Save the personal library and forget the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			name, ok, err := e.marker.Current()
			if err != nil {
				return err
			}
			if ok {
				if err := e.libraries.Release(name); err != nil {
					return err
				}
			}
			if err := e.marker.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := getEnv().currentUser()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", u.Username, u.Role)
			return nil
		},
	}
}
