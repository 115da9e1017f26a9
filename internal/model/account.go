package model

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CardNumberLength is the number of digits in a card number.
const CardNumberLength = 16

// Account represents one user record in the bank snapshot. The username is
// the primary key and is immutable after registration; everything else
// mutates through ledger operations.
type Account struct {
	Username   string
	Password   string
	CardNumber string // 16 digits, no separators
	CVV        string
	ExpMonth   int
	ExpYear    int
	USD        decimal.Decimal
	UAH        decimal.Decimal
	CreditDebt decimal.Decimal
	// CreditDueAt is set iff CreditDebt > 0.
	CreditDueAt *time.Time
	// Transactions is append-only; most recent last.
	Transactions []string
	Portfolio    map[string]decimal.Decimal
	Deposits     []Deposit
}

// Deposit is a time-locked amount that pays out principal plus interest once
// matured. Deposits carry no stable ID; display identity is positional.
type Deposit struct {
	Principal decimal.Decimal
	MaturesAt time.Time
}

// Matured reports whether the deposit's term has ended at the given time.
func (d Deposit) Matured(now time.Time) bool {
	return !d.MaturesAt.After(now)
}

// CheckPassword compares the stored credential against a candidate. The
// representation is an implementation detail; callers only see the verdict,
// so swapping the plain string for a hash does not change this contract.
func (a *Account) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(a.Password), []byte(candidate)) == 1
}

// Holding returns the owned quantity of an asset; absent entries mean zero.
func (a *Account) Holding(symbol string) decimal.Decimal {
	if q, ok := a.Portfolio[symbol]; ok {
		return q
	}
	return decimal.Zero
}

// AppendTransaction records a human-readable ledger entry.
func (a *Account) AppendTransaction(entry string) {
	a.Transactions = append(a.Transactions, entry)
}

// CardDisplay returns the cosmetic grouped rendering of the card number,
// e.g. "1234 5678 9012 3456". Never used for lookup.
func (a *Account) CardDisplay() string {
	return FormatCardNumber(a.CardNumber)
}

// ExpiryDisplay renders the expiry as MM/YY.
func (a *Account) ExpiryDisplay() string {
	return fmt.Sprintf("%02d/%02d", a.ExpMonth, a.ExpYear%100)
}

// Clone returns a deep copy so callers cannot mutate repository state
// outside a ledger operation.
func (a *Account) Clone() *Account {
	cp := *a
	if a.CreditDueAt != nil {
		due := *a.CreditDueAt
		cp.CreditDueAt = &due
	}
	cp.Transactions = append([]string(nil), a.Transactions...)
	cp.Deposits = append([]Deposit(nil), a.Deposits...)
	cp.Portfolio = make(map[string]decimal.Decimal, len(a.Portfolio))
	for sym, qty := range a.Portfolio {
		cp.Portfolio[sym] = qty
	}
	return &cp
}

// FormatCardNumber groups a raw digit string into blocks of four.
func FormatCardNumber(raw string) string {
	out := make([]byte, 0, len(raw)+len(raw)/4)
	for i := 0; i < len(raw); i++ {
		if i > 0 && i%4 == 0 {
			out = append(out, ' ')
		}
		out = append(out, raw[i])
	}
	return string(out)
}
