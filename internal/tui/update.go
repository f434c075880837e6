package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attidev/storefront/internal/cart"
	"github.com/attidev/storefront/internal/gateway"
)

const loginFallbackMessage = "Invalid username or password"

// Update routes messages to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(productColumns(msg.Width))
		height := msg.Height - 8
		if height < 5 {
			height = 5
		}
		m.table.SetHeight(height)
		return m, nil

	case initMsg:
		cmd := (&m).fetchPage()
		return m, cmd

	case loginResultMsg:
		return m.onLoginResult(msg)

	case pageMsg:
		return m.onPage(msg)

	case createResultMsg:
		return m.onCreateResult(msg)
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	default:
		return m.updateProducts(msg)
	}
}

func (m Model) onLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		// Prefer the server-supplied message, fall back to a fixed one.
		var apiErr *gateway.APIError
		if errors.As(msg.err, &apiErr) {
			m.loginErr = apiErr.ServerMessage(loginFallbackMessage)
		} else {
			m.loginErr = loginFallbackMessage
		}
		return m, nil
	}
	m.loginErr = ""
	m.screen = screenProducts
	cmd := (&m).fetchPage()
	return m, cmd
}

func (m Model) onPage(msg pageMsg) (tea.Model, tea.Cmd) {
	// A response from a superseded fetch is stale; dropping it keeps the
	// newest request authoritative regardless of arrival order.
	if msg.gen != m.fetchGen {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		// Keep the last-known-good list; only the status line changes.
		m.status = m.styles.ErrMsg.Render("fetch failed: " + errorMessage(msg.err))
		return m, nil
	}
	m.lastPage = msg.page
	m.status = ""
	(&m).recompute()
	return m, nil
}

func (m Model) onCreateResult(msg createResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.form.errMsg = errorMessage(msg.err)
		return m, nil
	}
	// The created product is local until the next refresh: it shows at the
	// head of the list with no further fetch.
	m.deps.State.AddLocal(*msg.product)
	m.formOpen = false
	m.form.reset()
	m.status = fmt.Sprintf("created %q (ART-%d)", msg.product.Title, msg.product.ID)
	(&m).recompute()
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateLoginInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		return m.focusLoginInput()
	case "shift+tab", "up":
		m.loginFocus = (m.loginFocus - 1 + len(m.loginInputs)) % len(m.loginInputs)
		return m.focusLoginInput()
	case "ctrl+r":
		m.loginRemember = !m.loginRemember
		return m, nil
	case "enter":
		if m.loggingIn {
			return m, nil
		}
		username := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if username == "" || password == "" {
			m.loginErr = "username and password are required"
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		cmd := (&m).loginCmd(username, password, m.loginRemember)
		return m, cmd
	}
	return m.updateLoginInputs(msg)
}

func (m Model) focusLoginInput() (tea.Model, tea.Cmd) {
	for i := range m.loginInputs {
		if i == m.loginFocus {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
	return m, nil
}

func (m Model) updateLoginInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) updateProducts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	if m.cartOpen {
		if handled, model, cmd := m.updateCart(keyMsg); handled {
			return model, cmd
		}
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, nil

	case "[", "left":
		if m.page > 1 {
			m.page--
			cmd := (&m).fetchPage()
			return m, cmd
		}
		return m, nil

	case "]", "right":
		if m.pagination().HasNext() {
			m.page++
			cmd := (&m).fetchPage()
			return m, cmd
		}
		return m, nil

	case "s":
		m.sort = nextSortField(m.sort)
		(&m).recompute()
		return m, nil

	case "S":
		m.sort = toggleDirection(m.sort)
		(&m).recompute()
		return m, nil

	case " ":
		if p, ok := m.current(); ok {
			m.deps.State.ToggleSelection(p.ID)
			(&m).recompute()
		}
		return m, nil

	case "a":
		// Select all visible rows, or none when everything is selected.
		if m.deps.State.SelectedCount() == len(m.visible) && len(m.visible) > 0 {
			m.deps.State.DeselectAll()
		} else {
			ids := make([]int, len(m.visible))
			for i, p := range m.visible {
				ids[i] = p.ID
			}
			m.deps.State.SelectAll(ids)
		}
		(&m).recompute()
		return m, nil

	case "+":
		if p, ok := m.current(); ok {
			m.deps.Cart.Add(cart.Item{ID: p.ID, Name: p.Title, Price: p.Price, Image: p.Thumbnail})
			m.status = fmt.Sprintf("added %q to cart", p.Title)
		}
		return m, nil

	case "c":
		m.cartOpen = !m.cartOpen
		m.cartCursor = 0
		return m, nil

	case "d":
		// Local products are removed outright; remote ones are hidden,
		// since the remote service may not honor the deletion.
		if p, ok := m.current(); ok {
			if m.deps.State.IsLocal(p.ID) {
				m.deps.State.RemoveLocal(p.ID)
			} else {
				m.deps.State.Exclude(p.ID)
			}
			(&m).recompute()
		}
		return m, nil

	case "n":
		m.formOpen = true
		m.form.reset()
		return m, nil

	case "r":
		// Refresh drops local products and exclusions and refetches.
		m.deps.State.Reset()
		m.page = 1
		cmd := (&m).fetchPage()
		return m, cmd

	case "L":
		if err := m.deps.Session.Logout(); err != nil {
			m.status = m.styles.ErrMsg.Render("logout failed: " + err.Error())
			return m, nil
		}
		m.screen = screenLogin
		m.loginErr = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.page = 1
		cmd := (&m).fetchPage()
		return m, cmd
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return m, cmd
}

// updateCart handles keys while the drawer is open. Unhandled keys fall
// through to the table.
func (m Model) updateCart(keyMsg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	lines := m.deps.Cart.Lines()
	switch keyMsg.String() {
	case "esc":
		m.cartOpen = false
		return true, m, nil
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return true, m, nil
	case "down", "j":
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
		return true, m, nil
	case "x":
		if m.cartCursor < len(lines) {
			m.deps.Cart.Remove(lines[m.cartCursor].ID)
			if m.cartCursor > 0 {
				m.cartCursor--
			}
		}
		return true, m, nil
	case "X":
		m.deps.Cart.Clear()
		m.cartCursor = 0
		return true, m, nil
	}
	return false, m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		cmd := m.form.update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.formOpen = false
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		draft, err := m.form.draft()
		if err != nil {
			m.form.errMsg = errorMessage(err)
			return m, nil
		}
		cmd := (&m).createCmd(draft)
		return m, cmd
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func errorMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ServerMessage(apiErr.Error())
	}
	return err.Error()
}
