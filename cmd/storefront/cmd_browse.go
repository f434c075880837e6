package main

import (
	"github.com/spf13/cobra"

	"github.com/attidev/storefront/internal/cart"
	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive catalog browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(tui.Deps{
			Gateway:  a.gw,
			Session:  a.session,
			Cart:     cart.New(),
			State:    catalog.NewState(),
			PageSize: a.cfg.Catalog.PageSize,
			Timeout:  a.cfg.API.Timeout,
			Logger:   a.logger,
		})
	},
}
