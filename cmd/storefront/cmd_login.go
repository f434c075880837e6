package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/attidev/storefront/internal/gateway"
)

var (
	loginUsername string
	loginPassword string
	loginRemember bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the catalog service",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		username, password := loginUsername, loginPassword
		if username == "" || password == "" {
			// Prefill from remembered credentials, then prompt for whatever
			// is still missing.
			if u, p, ok := a.session.SavedCredentials(); ok {
				if username == "" {
					username = u
				}
				if password == "" {
					password = p
				}
			}
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Username").
						Value(&username),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password),
					huh.NewConfirm().
						Title("Remember credentials?").
						Value(&loginRemember),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		if err := a.session.Login(cmd.Context(), username, password, loginRemember); err != nil {
			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("login failed: %s", apiErr.ServerMessage("invalid username or password"))
			}
			return fmt.Errorf("login failed: %w", err)
		}

		user := a.session.User()
		color.Green("Signed in as %s %s (%s)", user.FirstName, user.LastName, user.Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", false, "remember credentials for next time")
}
