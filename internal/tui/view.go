package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m Model) View() string {
	if m.screen == screenLogin {
		return m.viewLogin()
	}
	return m.viewProducts()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("storefront"))
	b.WriteString("\n\n")
	b.WriteString("Please sign in\n\n")
	b.WriteString(m.styles.FormLabel.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.loginInputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.styles.FormLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.loginInputs[1].View())
	b.WriteString("\n\n")

	remember := "[ ] remember me"
	if m.loginRemember {
		remember = "[x] remember me"
	}
	b.WriteString(m.styles.Status.Render(remember + "  (ctrl+r toggles)"))
	b.WriteString("\n")

	if m.loggingIn {
		b.WriteString(m.styles.Status.Render("signing in…"))
		b.WriteString("\n")
	}
	if m.loginErr != "" {
		b.WriteString(m.styles.ErrMsg.Render(m.loginErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter sign in · tab next field · esc quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewProducts() string {
	if m.formOpen {
		return m.viewForm()
	}

	header := m.viewHeader()
	body := m.table.View()
	if m.cartOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.viewCart())
	}
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("Products")

	search := "search: " + m.search.View()
	if !m.searching && m.query == "" {
		search = m.styles.Status.Render("press / to search")
	}

	cartBadge := ""
	if n := m.deps.Cart.TotalQuantity(); n > 0 {
		cartBadge = m.styles.Badge.Render(fmt.Sprintf("cart %d", n))
	}

	who := ""
	if user := m.deps.Session.User(); user != nil {
		who = m.styles.Status.Render(user.FirstName + " " + user.LastName)
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", search)
	right := lipgloss.JoinHorizontal(lipgloss.Center, cartBadge, " ", who)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) viewFooter() string {
	p := m.pagination()
	showing := fmt.Sprintf("showing %d-%d of %d", p.From, p.To, p.Total)
	pages := fmt.Sprintf("page %d/%d", p.Page, p.TotalPages)
	sorted := "sort: " + sortLabel(m.sort)
	selected := ""
	if n := m.deps.State.SelectedCount(); n > 0 {
		selected = fmt.Sprintf(" · %d selected", n)
	}
	loading := ""
	if m.loading {
		loading = " · loading…"
	}

	line := fmt.Sprintf("%s · %s · %s%s%s", showing, pages, sorted, selected, loading)
	help := m.styles.Help.Render("[/] search · [s/S] sort · [[/]] page · [space] select · [a] all · [+] cart add · [c] cart · [d] delete · [n] new · [r] refresh · [L] logout · [q] quit")

	parts := []string{m.styles.Footer.Render(line)}
	if m.status != "" {
		parts = append(parts, m.styles.Footer.Render(m.status))
	}
	parts = append(parts, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewCart() string {
	lines := m.deps.Cart.Lines()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Cart (%d)", len(lines))))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(m.styles.Status.Render("cart is empty"))
	}
	for i, line := range lines {
		row := fmt.Sprintf("%d × %s  %.2f", line.Quantity, line.Name, line.Price)
		if i == m.cartCursor {
			row = m.styles.Selected.Render("> " + row)
		} else {
			row = m.styles.DrawerLine.Render("  " + row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.DrawerLine.Render(fmt.Sprintf("total: %.2f", m.deps.Cart.TotalPrice())))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("x remove · X clear · esc close"))
	return m.styles.Drawer.Render(b.String())
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("New product"))
	b.WriteString("\n\n")
	for i, label := range m.form.labels {
		b.WriteString(m.styles.FormLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrMsg.Render(m.form.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter create · tab next field · esc cancel"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
