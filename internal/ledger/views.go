package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dji357a-gif/BANK1/internal/model"
)

// Balances is a read-only snapshot of an account's money position.
type Balances struct {
	USD         decimal.Decimal
	UAH         decimal.Decimal
	CreditDebt  decimal.Decimal
	CreditDueAt *time.Time
}

// BalanceOf returns the account's current balances and debt.
func (s *Service) BalanceOf(username string) (Balances, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return Balances{}, err
	}
	return Balances{
		USD:         a.USD,
		UAH:         a.UAH,
		CreditDebt:  a.CreditDebt,
		CreditDueAt: a.CreditDueAt,
	}, nil
}

// History returns the last n transaction entries, most recent first.
func (s *Service) History(username string, n int) ([]string, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return nil, err
	}
	entries := a.Transactions
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// DepositsOf returns the account's open deposits in insertion order.
func (s *Service) DepositsOf(username string) ([]model.Deposit, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return nil, err
	}
	return a.Deposits, nil
}

// Holding is one portfolio position.
type Holding struct {
	Symbol   string
	Quantity decimal.Decimal
}

// PortfolioOf returns the account's asset positions in symbol order.
func (s *Service) PortfolioOf(username string) ([]Holding, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return nil, err
	}
	out := make([]Holding, 0, len(a.Portfolio))
	for sym, qty := range a.Portfolio {
		out = append(out, Holding{Symbol: sym, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

// Card is the display view of an account's card.
type Card struct {
	Number  string // raw digits
	Display string // grouped in blocks of four
	CVV     string
	Expiry  string // MM/YY
}

// CardOf returns the account's card details for display.
func (s *Service) CardOf(username string) (Card, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Number:  a.CardNumber,
		Display: a.CardDisplay(),
		CVV:     a.CVV,
		Expiry:  a.ExpiryDisplay(),
	}, nil
}
