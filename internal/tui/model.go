// Package tui implements the interactive storefront: a login screen
// followed by the product table with search, sort, pagination, selection,
// and the cart drawer.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attidev/storefront/internal/cart"
	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/catalog/viewmodel"
	"github.com/attidev/storefront/internal/gateway"
)

// Gateway is the slice of the remote gateway the UI needs.
type Gateway interface {
	FetchPage(ctx context.Context, limit, skip int, query string) (*catalog.Page, error)
	Create(ctx context.Context, draft catalog.Draft) (*catalog.Product, error)
}

// Session is the slice of the session state the UI needs.
type Session interface {
	Login(ctx context.Context, username, password string, remember bool) error
	Logout() error
	Authenticated() bool
	User() *gateway.AuthUser
	SavedCredentials() (username, password string, ok bool)
}

// Deps are the state holders and collaborators the UI works against. They
// are owned by the caller and mutated only from the UI's update loop.
type Deps struct {
	Gateway  Gateway
	Session  Session
	Cart     *cart.Cart
	State    *catalog.State
	PageSize int
	Timeout  time.Duration
	Logger   *slog.Logger
}

type screen int

const (
	screenLogin screen = iota
	screenProducts
)

// Model is the bubbletea model for the whole application.
type Model struct {
	deps   Deps
	styles Styles
	screen screen
	width  int
	height int

	// login screen
	loginInputs   []textinput.Model
	loginFocus    int
	loginRemember bool
	loginErr      string
	loggingIn     bool

	// product table
	table     table.Model
	search    textinput.Model
	searching bool
	query     string
	page      int
	sort      viewmodel.Sort
	lastPage  *catalog.Page
	visible   []catalog.Product
	fetchGen  uint64
	loading   bool
	status    string

	// cart drawer
	cartOpen   bool
	cartCursor int

	// add-product form
	formOpen bool
	form     addForm
}

// New builds the initial model. An already-authenticated session skips the
// login screen.
func New(deps Deps) Model {
	if deps.PageSize <= 0 {
		deps.PageSize = 20
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 15 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	if user, pass, ok := deps.Session.SavedCredentials(); ok {
		username.SetValue(user)
		password.SetValue(pass)
	}

	search := textinput.New()
	search.Placeholder = "search…"
	search.CharLimit = 128

	t := table.New(
		table.WithColumns(productColumns(0)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	m := Model{
		deps:        deps,
		styles:      DefaultStyles(),
		screen:      screenLogin,
		loginInputs: []textinput.Model{username, password},
		search:      search,
		table:       t,
		page:        1,
		form:        newAddForm(),
	}
	if deps.Session.Authenticated() {
		m.screen = screenProducts
	}
	return m
}

// Init starts the first page fetch when the session is already live.
func (m Model) Init() tea.Cmd {
	if m.screen == screenProducts {
		return func() tea.Msg { return initMsg{} }
	}
	return textinput.Blink
}

// fetchPage issues a page fetch tagged with a fresh generation. Responses
// carrying an older generation are ignored on arrival.
func (m *Model) fetchPage() tea.Cmd {
	m.fetchGen++
	m.loading = true
	gen := m.fetchGen
	limit := m.deps.PageSize
	skip := (m.page - 1) * limit
	query := m.query
	gw := m.deps.Gateway
	timeout := m.deps.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		page, err := gw.FetchPage(ctx, limit, skip, query)
		return pageMsg{gen: gen, page: page, err: err}
	}
}

// loginCmd runs the credential exchange off the update loop.
func (m *Model) loginCmd(username, password string, remember bool) tea.Cmd {
	sess := m.deps.Session
	timeout := m.deps.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := sess.Login(ctx, username, password, remember); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{user: sess.User()}
	}
}

// createCmd submits a draft.
func (m *Model) createCmd(draft catalog.Draft) tea.Cmd {
	gw := m.deps.Gateway
	timeout := m.deps.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		product, err := gw.Create(ctx, draft)
		return createResultMsg{product: product, err: err}
	}
}

// recompute rebuilds the visible list and table rows from current state.
func (m *Model) recompute() {
	var remote []catalog.Product
	if m.lastPage != nil {
		remote = m.lastPage.Products
	}
	m.visible = viewmodel.Compose(remote, m.deps.State.Local(), m.deps.State.Excluded(), m.query, m.sort)

	rows := make([]table.Row, len(m.visible))
	for i, p := range m.visible {
		rows[i] = table.Row{
			m.selectionMark(p.ID),
			p.Title,
			p.Category,
			vendorOf(p),
			fmt.Sprintf("ART-%d", p.ID),
			fmt.Sprintf("%.1f/5", p.Rating),
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d", p.Stock),
		}
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model) selectionMark(id int) string {
	mark := " "
	if m.deps.State.IsSelected(id) {
		mark = "✓"
	}
	if m.deps.State.IsLocal(id) {
		mark += "●"
	} else {
		mark += " "
	}
	return mark
}

// current returns the product under the cursor.
func (m *Model) current() (catalog.Product, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return catalog.Product{}, false
	}
	return m.visible[idx], true
}

// pagination derives the footer boundaries from the last remote total.
func (m *Model) pagination() viewmodel.Pagination {
	total := 0
	if m.lastPage != nil {
		total = m.lastPage.Total
	}
	return viewmodel.Paginate(total, m.deps.PageSize, m.page)
}

func vendorOf(p catalog.Product) string {
	if p.Brand == "" {
		return "N/A"
	}
	return p.Brand
}

func productColumns(width int) []table.Column {
	// Title gets whatever is left after the fixed columns.
	titleWidth := width - 58
	if titleWidth < 24 {
		titleWidth = 24
	}
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Name", Width: titleWidth},
		{Title: "Category", Width: 12},
		{Title: "Vendor", Width: 14},
		{Title: "Article", Width: 9},
		{Title: "Rating", Width: 7},
		{Title: "Price", Width: 9},
		{Title: "Qty", Width: 5},
	}
}
