package tui

import (
	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/gateway"
)

// initMsg kicks off the first page fetch from the update loop, where model
// mutations stick.
type initMsg struct{}

// loginResultMsg reports the outcome of a login exchange.
type loginResultMsg struct {
	user *gateway.AuthUser
	err  error
}

// pageMsg carries a fetched catalog page. gen is the fetch generation the
// request was issued under; responses from superseded generations are
// discarded so a slow stale response can never overwrite a newer one.
type pageMsg struct {
	gen  uint64
	page *catalog.Page
	err  error
}

// createResultMsg reports the outcome of a product creation.
type createResultMsg struct {
	product *catalog.Product
	err     error
}
