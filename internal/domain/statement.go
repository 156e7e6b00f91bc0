package domain

import "time"

// Statement is a consistent point-in-time view of an account: the balance and
// limit as of a single snapshot plus the ten most recent transactions,
// newest first.
type Statement struct {
	AccountID    int64
	Balance      int64
	Limit        int64
	AsOf         time.Time
	Transactions []*Transaction
}
