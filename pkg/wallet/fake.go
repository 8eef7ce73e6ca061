package wallet

import "sync"

// Fake is an in-memory Wallet for tests
type Fake struct {
	mu         sync.Mutex
	balance    int
	authorized map[string]int
}

var _ Wallet = (*Fake)(nil)

// NewFake returns a fake wallet holding the given balance
func NewFake(balance int) *Fake {
	return &Fake{
		balance:    balance,
		authorized: make(map[string]int),
	}
}

// Value returns the available balance
func (f *Fake) Value() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.balance
}

// Inc adjusts the available balance
func (f *Fake) Inc(amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balance+amount < 0 {
		return ErrNotEnoughMoney
	}

	f.balance += amount
	return nil
}

// Authorize moves amount into the game's hold
func (f *Fake) Authorize(gameID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balance < amount {
		return ErrNotEnoughMoney
	}

	f.balance -= amount
	f.authorized[gameID] += amount
	return nil
}

// AuthorizeAll moves the entire balance into the game's hold
func (f *Fake) AuthorizeAll(gameID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amount := f.balance
	f.balance = 0
	f.authorized[gameID] += amount
	return amount, nil
}

// AuthorizedMoney returns the amount held for the game
func (f *Fake) AuthorizedMoney(gameID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.authorized[gameID]
}

// Approve releases the game's hold
func (f *Fake) Approve(gameID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.authorized, gameID)
}
