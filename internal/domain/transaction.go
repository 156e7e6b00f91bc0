package domain

import "time"

// TransactionKind is the sign of a transaction.
type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Delta returns the signed balance change for amount under this kind.
func (k TransactionKind) Delta(amount int64) int64 {
	if k == KindDebit {
		return -amount
	}
	return amount
}

// Transaction is a single append-only ledger record. Its ID is assigned by
// the store in insertion order and is the tiebreak for "most recent" when
// timestamps collide.
type Transaction struct {
	ID          int64
	AccountID   int64
	Amount      int64
	Kind        TransactionKind
	Description string
	OccurredAt  time.Time
}
