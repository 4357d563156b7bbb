package user

import "sync"

// AccountRepository provides in-memory account storage.
type AccountRepository struct {
	accounts map[int64]*Account
	mu       sync.RWMutex
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]*Account),
	}
}

// SeedPlaceholderAccount adds the fixed placeholder owner.
func (r *AccountRepository) SeedPlaceholderAccount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[PlaceholderOwnerID] = &Account{
		ID:    PlaceholderOwnerID,
		Name:  "Placeholder User",
		Email: "user@example.com",
	}
}

// Exists checks if an account exists.
func (r *AccountRepository) Exists(ownerID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, found := r.accounts[ownerID]
	return found
}
