package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.session.Authenticated() {
			fmt.Println("Not signed in.")
			return nil
		}
		if err := a.session.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}
