package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attidev/storefront/internal/cart"
	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/gateway"
)

// mockGateway is a mock implementation of the Gateway interface
type mockGateway struct {
	page       *catalog.Page
	pageErr    error
	product    *catalog.Product
	createErr  error
	fetchCalls int
}

func (m *mockGateway) FetchPage(_ context.Context, _, _ int, _ string) (*catalog.Page, error) {
	m.fetchCalls++
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	return m.page, nil
}

func (m *mockGateway) Create(_ context.Context, _ catalog.Draft) (*catalog.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.product, nil
}

// mockSession is a mock implementation of the Session interface
type mockSession struct {
	authenticated bool
	loginErr      error
	user          *gateway.AuthUser
	savedUser     string
	savedPass     string
	loggedOut     bool
}

func (m *mockSession) Login(_ context.Context, _, _ string, _ bool) error {
	if m.loginErr != nil {
		return m.loginErr
	}
	m.authenticated = true
	return nil
}

func (m *mockSession) Logout() error {
	m.authenticated = false
	m.loggedOut = true
	return nil
}

func (m *mockSession) Authenticated() bool { return m.authenticated }

func (m *mockSession) User() *gateway.AuthUser { return m.user }

func (m *mockSession) SavedCredentials() (string, string, bool) {
	return m.savedUser, m.savedPass, m.savedUser != ""
}

func newTestModel(gw *mockGateway, sess *mockSession) Model {
	return New(Deps{
		Gateway:  gw,
		Session:  sess,
		Cart:     cart.New(),
		State:    catalog.NewState(),
		PageSize: 20,
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// loadPage drives one full fetch/response cycle through Update.
func loadPage(t *testing.T, m Model, page *catalog.Page) Model {
	t.Helper()
	updated, cmd := m.Update(initMsg{})
	require.NotNil(t, cmd)
	m = updated.(Model)
	updated, _ = m.Update(pageMsg{gen: m.fetchGen, page: page})
	return updated.(Model)
}

func twoProductPage() *catalog.Page {
	return &catalog.Page{
		Products: []catalog.Product{
			{ID: 1, Title: "Essence Mascara", Price: 9.99},
			{ID: 2, Title: "Eyeshadow Palette", Price: 19.99},
		},
		Total: 57,
		Limit: 20,
	}
}

func Test_Model_StartsOnLoginWhenUnauthenticated(t *testing.T) {
	m := newTestModel(&mockGateway{}, &mockSession{})
	assert.Equal(t, screenLogin, m.screen)

	authed := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	assert.Equal(t, screenProducts, authed.screen)
}

func Test_Model_PrefillsSavedCredentials(t *testing.T) {
	m := newTestModel(&mockGateway{}, &mockSession{savedUser: "emilys", savedPass: "emilyspass"})
	assert.Equal(t, "emilys", m.loginInputs[0].Value())
	assert.Equal(t, "emilyspass", m.loginInputs[1].Value())
}

func Test_Update_PageResult(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	// when
	m = loadPage(t, m, twoProductPage())
	// then
	assert.False(t, m.loading)
	require.Len(t, m.visible, 2)
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, 57, m.lastPage.Total)
}

func Test_Update_StalePageResultIsDiscarded(t *testing.T) {
	// given: a loaded model with a newer fetch in flight
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	updated, _ := m.Update(keyMsg("]"))
	m = updated.(Model)
	require.True(t, m.loading)
	staleGen := m.fetchGen - 1
	// when: a response from the superseded fetch arrives late
	updated, _ = m.Update(pageMsg{gen: staleGen, page: &catalog.Page{
		Products: []catalog.Product{{ID: 99, Title: "Stale"}},
		Total:    1,
	}})
	m = updated.(Model)
	// then: it changes nothing, the newer fetch stays authoritative
	assert.True(t, m.loading)
	assert.Equal(t, 57, m.lastPage.Total)
	require.Len(t, m.visible, 2)
	assert.NotEqual(t, "Stale", m.visible[0].Title)
}

func Test_Update_FetchErrorKeepsLastKnownGood(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	// when: the next fetch fails
	updated, _ := m.Update(keyMsg("]"))
	m = updated.(Model)
	updated, _ = m.Update(pageMsg{gen: m.fetchGen, err: &gateway.APIError{Status: 500, Message: "boom"}})
	m = updated.(Model)
	// then: the previous list is still shown with an error status
	assert.Len(t, m.visible, 2)
	assert.Contains(t, m.status, "boom")
	assert.False(t, m.loading)
}

func Test_Update_LoginFailureShowsServerMessage(t *testing.T) {
	// given
	sess := &mockSession{}
	m := newTestModel(&mockGateway{}, sess)
	m.loginInputs[0].SetValue("emilys")
	m.loginInputs[1].SetValue("wrong")
	sess.loginErr = &gateway.APIError{Status: 400, Message: "Invalid credentials"}
	// when
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd().(loginResultMsg))
	m = updated.(Model)
	// then: still on the login screen with the server's message
	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Invalid credentials", m.loginErr)
	assert.False(t, m.loggingIn)
}

func Test_Update_LoginSuccessSwitchesToProducts(t *testing.T) {
	// given
	sess := &mockSession{user: &gateway.AuthUser{Username: "emilys"}}
	gw := &mockGateway{page: twoProductPage()}
	m := newTestModel(gw, sess)
	m.loginInputs[0].SetValue("emilys")
	m.loginInputs[1].SetValue("emilyspass")
	// when
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	updated, fetchCmd := m.Update(cmd().(loginResultMsg))
	m = updated.(Model)
	// then: the product screen comes up with a fetch underway
	assert.Equal(t, screenProducts, m.screen)
	assert.True(t, m.loading)
	require.NotNil(t, fetchCmd)
}

func Test_Update_EmptyCredentialsAreRejectedLocally(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{})
	// when
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	// then
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.loginErr)
}

func Test_Update_CreateResultAddsLocalWithoutRefetch(t *testing.T) {
	// given
	gw := &mockGateway{}
	m := newTestModel(gw, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	fetchesBefore := gw.fetchCalls
	created := catalog.Product{ID: 195, Title: "Lip Tint", Price: 12.5}
	// when
	updated, _ := m.Update(createResultMsg{product: &created})
	m = updated.(Model)
	// then: the new product heads the list, no new fetch was issued
	require.Len(t, m.visible, 3)
	assert.Equal(t, "Lip Tint", m.visible[0].Title)
	assert.True(t, m.deps.State.IsLocal(195))
	assert.Equal(t, fetchesBefore, gw.fetchCalls)
	assert.False(t, m.formOpen)
}

func Test_Update_DeleteHidesRemoteAndRemovesLocal(t *testing.T) {
	// given: one local product at the head and two remote ones
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	updated, _ := m.Update(createResultMsg{product: &catalog.Product{ID: 195, Title: "Lip Tint"}})
	m = updated.(Model)
	require.Len(t, m.visible, 3)

	// when: deleting the local product under the cursor
	m.table.SetCursor(0)
	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	// then: it is gone outright
	assert.False(t, m.deps.State.IsLocal(195))
	assert.Len(t, m.visible, 2)

	// when: deleting a remote product
	m.table.SetCursor(0)
	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	// then: it is hidden, not forgotten
	assert.True(t, m.deps.State.IsExcluded(1))
	assert.Len(t, m.visible, 1)
}

func Test_Update_SelectionKeys(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())

	// when: toggling the row under the cursor
	m.table.SetCursor(0)
	updated, _ := m.Update(keyMsg(" "))
	m = updated.(Model)
	// then
	assert.True(t, m.deps.State.IsSelected(1))

	// when: select-all, then select-all again
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(Model)
	assert.Equal(t, 2, m.deps.State.SelectedCount())
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(Model)
	// then: a full selection toggles back to none
	assert.Zero(t, m.deps.State.SelectedCount())
}

func Test_Update_CartKeys(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	m.table.SetCursor(0)

	// when: adding the same product twice
	updated, _ := m.Update(keyMsg("+"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("+"))
	m = updated.(Model)
	// then
	require.Equal(t, 1, m.deps.Cart.Len())
	assert.Equal(t, 2, m.deps.Cart.TotalQuantity())

	// when: opening the drawer and removing the line
	updated, _ = m.Update(keyMsg("c"))
	m = updated.(Model)
	require.True(t, m.cartOpen)
	updated, _ = m.Update(keyMsg("x"))
	m = updated.(Model)
	// then: the whole line goes at once
	assert.Zero(t, m.deps.Cart.Len())
}

func Test_Update_PagingKeys(t *testing.T) {
	// given: page 1 of 3
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())

	// when: paging back on the first page
	updated, cmd := m.Update(keyMsg("["))
	m = updated.(Model)
	// then: nothing happens
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.page)

	// when: paging forward
	updated, cmd = m.Update(keyMsg("]"))
	m = updated.(Model)
	// then
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.page)
	assert.True(t, m.loading)
}

func Test_Update_RefreshResetsCompositionState(t *testing.T) {
	// given: local products, exclusions, and page 2
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	m.deps.State.AddLocal(catalog.Product{ID: 195, Title: "Lip Tint"})
	m.deps.State.Exclude(1)
	m.page = 2
	// when
	updated, cmd := m.Update(keyMsg("r"))
	m = updated.(Model)
	// then: remote truth alone, from page 1
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.page)
	assert.Empty(t, m.deps.State.Local())
	assert.Empty(t, m.deps.State.Excluded())
}

func Test_Update_SearchApplyAndCancel(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())
	m.page = 2

	// when: entering a query
	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	require.True(t, m.searching)
	m.search.SetValue("mascara")
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	// then: the query applies and paging starts over
	require.NotNil(t, cmd)
	assert.Equal(t, "mascara", m.query)
	assert.Equal(t, 1, m.page)
	assert.False(t, m.searching)

	// when: opening search again and cancelling
	updated, _ = m.Update(keyMsg("/"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	// then: the active query is untouched
	assert.False(t, m.searching)
	assert.Equal(t, "mascara", m.query)
}

func Test_Update_SortKeys(t *testing.T) {
	// given
	m := newTestModel(&mockGateway{}, &mockSession{authenticated: true})
	m = loadPage(t, m, twoProductPage())

	// when: cycling to the first sort field
	updated, _ := m.Update(keyMsg("s"))
	m = updated.(Model)
	// then: sorting is applied without a fetch
	assert.True(t, m.sort.Active())
	assert.Equal(t, "Essence Mascara", m.visible[0].Title)

	// when: flipping the direction
	updated, _ = m.Update(keyMsg("S"))
	m = updated.(Model)
	assert.Equal(t, "Eyeshadow Palette", m.visible[0].Title)
}

func Test_Update_Logout(t *testing.T) {
	// given
	sess := &mockSession{authenticated: true}
	m := newTestModel(&mockGateway{}, sess)
	m = loadPage(t, m, twoProductPage())
	// when
	updated, _ := m.Update(keyMsg("L"))
	m = updated.(Model)
	// then
	assert.True(t, sess.loggedOut)
	assert.Equal(t, screenLogin, m.screen)
}
