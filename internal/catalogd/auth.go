package catalogd

import (
	"sync"

	"github.com/attidev/storefront/internal/gateway"
	"github.com/google/uuid"
)

// Account is a seeded demo user.
type Account struct {
	Password string
	User     gateway.AuthUser
}

// Authenticator issues and resolves opaque session tokens for the seeded
// accounts.
type Authenticator struct {
	mu       sync.RWMutex
	accounts map[string]Account
	tokens   map[string]string // token -> username
}

// NewAuthenticator creates an authenticator over the given accounts, keyed
// by username.
func NewAuthenticator(accounts map[string]Account) *Authenticator {
	return &Authenticator{
		accounts: accounts,
		tokens:   make(map[string]string),
	}
}

// Login checks the credentials and mints a fresh token pair. Returns false
// on unknown user or wrong password.
func (a *Authenticator) Login(username, password string) (gateway.AuthUser, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[username]
	if !ok || account.Password != password {
		return gateway.AuthUser{}, false
	}

	user := account.User
	user.Token = uuid.NewString()
	user.RefreshToken = uuid.NewString()
	a.tokens[user.Token] = username
	return user, true
}

// Resolve maps a token back to its session payload. Returns false for
// unknown tokens.
func (a *Authenticator) Resolve(token string) (gateway.AuthUser, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	username, ok := a.tokens[token]
	if !ok {
		return gateway.AuthUser{}, false
	}
	account, ok := a.accounts[username]
	if !ok {
		return gateway.AuthUser{}, false
	}
	return account.User, true
}
