package domain

import "time"

// Account represents a customer account with an overdraft-bounded balance.
// Amounts are in cents. Accounts pre-exist; the service never creates or
// deletes them, and Limit is immutable.
type Account struct {
	ID        int64
	Limit     int64
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks if debiting amount would push the balance below -limit.
func (a *Account) ValidateDebit(amount int64) error {
	if a.Balance-amount < -a.Limit {
		return ErrInsufficientBalance
	}
	return nil
}

// ApplyCredit returns the balance after crediting amount.
func (a *Account) ApplyCredit(amount int64) int64 {
	return a.Balance + amount
}

// ApplyDebit returns the balance after debiting amount.
func (a *Account) ApplyDebit(amount int64) int64 {
	return a.Balance - amount
}
