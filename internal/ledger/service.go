// Package ledger implements the bank's business rules: transfers, currency
// exchange, credit lines with time-based penalty compounding, time-locked
// deposits, and simulated asset trading. Operations fetch an account from
// the repository, validate every precondition, mutate the fetched snapshot
// in place, and persist once; a failed precondition leaves state untouched.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dji357a-gif/BANK1/internal/clock"
	"github.com/dji357a-gif/BANK1/internal/model"
	"github.com/dji357a-gif/BANK1/internal/store"
)

// Repository is the account storage the engine operates through.
type Repository interface {
	Get(username string) (*model.Account, error)
	Create(username, password string) (*model.Account, error)
	FindByCard(cardNumber string) (string, bool)
	// Save persists all given accounts in one durability point.
	Save(accounts ...*model.Account) error
}

// Pricer quotes current asset prices.
type Pricer interface {
	Price(symbol string) (decimal.Decimal, bool)
}

// Terms bundles the bank's fixed rates and durations.
type Terms struct {
	ExchangeRate      decimal.Decimal // UAH per USD, spread-free
	CreditFee         decimal.Decimal // origination fee fraction
	CreditTerm        time.Duration   // repayment window and penalty interval
	CreditPenaltyRate decimal.Decimal // compounding rate per missed interval
	DepositTerm       time.Duration
	DepositRate       decimal.Decimal // payout interest fraction
}

// DefaultTerms returns the stock terms: 41.5 UAH/USD, 5% origination on a
// 600 s credit term with 10% per-interval penalty, 120 s deposits at +5%.
func DefaultTerms() Terms {
	return Terms{
		ExchangeRate:      decimal.NewFromFloat(41.5),
		CreditFee:         decimal.NewFromFloat(0.05),
		CreditTerm:        600 * time.Second,
		CreditPenaltyRate: decimal.NewFromFloat(0.10),
		DepositTerm:       120 * time.Second,
		DepositRate:       decimal.NewFromFloat(0.05),
	}
}

// Service is the ledger engine.
type Service struct {
	repo   Repository
	quotes Pricer
	clk    clock.Clock
	terms  Terms
}

// NewService creates a ledger Service.
func NewService(repo Repository, quotes Pricer, clk clock.Clock, terms Terms) *Service {
	return &Service{repo: repo, quotes: quotes, clk: clk, terms: terms}
}

// Terms returns the terms the engine was built with.
func (s *Service) Terms() Terms { return s.terms }

// Register creates a new account with a freshly issued card.
func (s *Service) Register(username, password string) (*model.Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	return s.repo.Create(username, password)
}

// LoginReport carries the side effects of a login: the penalty accrual
// warning, if any, and the total deposit payout swept on entry.
type LoginReport struct {
	Penalty *PenaltyNotice
	Sweep   SweepResult
}

// Login verifies credentials and runs the on-entry checks: overdue credit
// penalty accrual and matured deposit payout.
func (s *Service) Login(username, password string, now time.Time) (LoginReport, error) {
	a, err := s.repo.Get(username)
	if errors.Is(err, store.ErrUnknownAccount) {
		return LoginReport{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginReport{}, err
	}
	if !a.CheckPassword(password) {
		return LoginReport{}, ErrInvalidCredentials
	}

	var report LoginReport
	if report.Penalty, err = s.AccrueCreditPenalty(username, now); err != nil {
		return LoginReport{}, err
	}
	if report.Sweep, err = s.SweepDeposits(username, now); err != nil {
		return LoginReport{}, err
	}
	return report, nil
}

// Transfer moves USD from sender to the owner of recipientCard. Both sides
// are persisted in one write; total USD across the two accounts is
// conserved exactly. Returns the recipient's username.
func (s *Service) Transfer(sender, recipientCard string, amount decimal.Decimal) (string, error) {
	card := strings.ReplaceAll(recipientCard, " ", "")
	recipient, ok := s.repo.FindByCard(card)
	if !ok {
		return "", ErrCardNotFound
	}
	if recipient == sender {
		return "", ErrSelfTransfer
	}
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}

	from, err := s.repo.Get(sender)
	if err != nil {
		return "", err
	}
	if from.USD.LessThan(amount) {
		return "", ErrInsufficientFunds
	}
	to, err := s.repo.Get(recipient)
	if err != nil {
		return "", err
	}

	from.USD = from.USD.Sub(amount)
	to.USD = to.USD.Add(amount)
	from.AppendTransaction(fmt.Sprintf("Transfer to %s: -$%s", recipient, amount.StringFixed(2)))
	to.AppendTransaction(fmt.Sprintf("Transfer from %s: +$%s", sender, amount.StringFixed(2)))

	if err := s.repo.Save(from, to); err != nil {
		return "", err
	}
	return recipient, nil
}

// ExchangeDirection selects which currency is sold in an exchange.
type ExchangeDirection int

const (
	// SellUSDBuyUAH converts USD into UAH at the fixed rate.
	SellUSDBuyUAH ExchangeDirection = iota
	// SellUAHBuyUSD converts UAH back into USD at the same rate.
	SellUAHBuyUSD
)

// Exchange converts between USD and UAH at the fixed, spread-free rate.
// Returns the amount received in the target currency.
func (s *Service) Exchange(username string, dir ExchangeDirection, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	a, err := s.repo.Get(username)
	if err != nil {
		return decimal.Zero, err
	}

	var received decimal.Decimal
	switch dir {
	case SellUSDBuyUAH:
		if a.USD.LessThan(amount) {
			return decimal.Zero, ErrInsufficientFunds
		}
		received = amount.Mul(s.terms.ExchangeRate)
		a.USD = a.USD.Sub(amount)
		a.UAH = a.UAH.Add(received)
	case SellUAHBuyUSD:
		if a.UAH.LessThan(amount) {
			return decimal.Zero, ErrInsufficientFunds
		}
		received = amount.Div(s.terms.ExchangeRate)
		a.UAH = a.UAH.Sub(amount)
		a.USD = a.USD.Add(received)
	default:
		return decimal.Zero, fmt.Errorf("unknown exchange direction %d", dir)
	}

	if err := s.repo.Save(a); err != nil {
		return decimal.Zero, err
	}
	return received, nil
}

// IssueCredit opens a credit line: the principal lands on the USD balance
// and the debt is principal plus the origination fee, due one credit term
// from now. Only one credit line may be active at a time. Returns the debt.
func (s *Service) IssueCredit(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return decimal.Zero, err
	}
	if a.CreditDebt.IsPositive() {
		return decimal.Zero, ErrActiveDebt
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	debt := amount.Add(amount.Mul(s.terms.CreditFee))
	due := s.clk.Now().Add(s.terms.CreditTerm)
	a.USD = a.USD.Add(amount)
	a.CreditDebt = debt
	a.CreditDueAt = &due
	a.AppendTransaction(fmt.Sprintf("Credit issued: +$%s (debt $%s)", amount.StringFixed(2), debt.StringFixed(2)))

	if err := s.repo.Save(a); err != nil {
		return decimal.Zero, err
	}
	return debt, nil
}

// PenaltyNotice reports a penalty accrual to the caller.
type PenaltyNotice struct {
	OldDebt   decimal.Decimal
	NewDebt   decimal.Decimal
	Intervals int64
	NewDueAt  time.Time
}

// AccrueCreditPenalty compounds overdue credit debt by the penalty rate for
// every full interval elapsed past the due time, then resets the due time
// to one fresh interval from now. Returns nil when nothing accrued.
func (s *Service) AccrueCreditPenalty(username string, now time.Time) (*PenaltyNotice, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return nil, err
	}
	if !a.CreditDebt.IsPositive() || a.CreditDueAt == nil || !now.After(*a.CreditDueAt) {
		return nil, nil
	}

	intervals := int64(now.Sub(*a.CreditDueAt) / s.terms.CreditTerm)
	if intervals <= 0 {
		return nil, nil
	}

	factor := decimal.NewFromInt(1).Add(s.terms.CreditPenaltyRate).Pow(decimal.NewFromInt(intervals))
	notice := &PenaltyNotice{
		OldDebt:   a.CreditDebt,
		NewDebt:   a.CreditDebt.Mul(factor),
		Intervals: intervals,
		NewDueAt:  now.Add(s.terms.CreditTerm),
	}
	a.CreditDebt = notice.NewDebt
	// The due time restarts at now + one term no matter how many intervals
	// were missed.
	due := notice.NewDueAt
	a.CreditDueAt = &due

	if err := s.repo.Save(a); err != nil {
		return nil, err
	}
	return notice, nil
}

// RepayCredit settles the whole debt from the USD balance and clears the
// due time. Repaying with no active debt is a no-op. Returns the amount
// paid.
func (s *Service) RepayCredit(username string) (decimal.Decimal, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return decimal.Zero, err
	}
	if !a.CreditDebt.IsPositive() {
		return decimal.Zero, nil
	}
	if a.USD.LessThan(a.CreditDebt) {
		return decimal.Zero, ErrInsufficientFunds
	}

	paid := a.CreditDebt
	a.USD = a.USD.Sub(paid)
	a.CreditDebt = decimal.Zero
	a.CreditDueAt = nil
	a.AppendTransaction(fmt.Sprintf("Credit repaid: -$%s", paid.StringFixed(2)))

	if err := s.repo.Save(a); err != nil {
		return decimal.Zero, err
	}
	return paid, nil
}

// OpenDeposit locks an amount away until one deposit term from now.
func (s *Service) OpenDeposit(username string, amount decimal.Decimal) (model.Deposit, error) {
	if !amount.IsPositive() {
		return model.Deposit{}, ErrInvalidAmount
	}
	a, err := s.repo.Get(username)
	if err != nil {
		return model.Deposit{}, err
	}
	if a.USD.LessThan(amount) {
		return model.Deposit{}, ErrInsufficientFunds
	}

	dep := model.Deposit{
		Principal: amount,
		MaturesAt: s.clk.Now().Add(s.terms.DepositTerm),
	}
	a.USD = a.USD.Sub(amount)
	a.Deposits = append(a.Deposits, dep)
	a.AppendTransaction(fmt.Sprintf("Deposit opened: -$%s", amount.StringFixed(2)))

	if err := s.repo.Save(a); err != nil {
		return model.Deposit{}, err
	}
	return dep, nil
}

// SweepResult summarizes a deposit sweep.
type SweepResult struct {
	Matured int
	Payout  decimal.Decimal
}

// SweepDeposits pays out every deposit matured at the given time, leaving
// pending ones in place. Persists only when something matured, so repeated
// sweeps with no new maturities are no-ops.
func (s *Service) SweepDeposits(username string, now time.Time) (SweepResult, error) {
	a, err := s.repo.Get(username)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Payout: decimal.Zero}
	pending := a.Deposits[:0]
	for _, dep := range a.Deposits {
		if !dep.Matured(now) {
			pending = append(pending, dep)
			continue
		}
		payout := dep.Principal.Add(dep.Principal.Mul(s.terms.DepositRate))
		a.USD = a.USD.Add(payout)
		a.AppendTransaction(fmt.Sprintf("DEPOSIT PAYOUT: +$%s", payout.StringFixed(2)))
		result.Matured++
		result.Payout = result.Payout.Add(payout)
	}
	if result.Matured == 0 {
		return result, nil
	}

	a.Deposits = pending
	if err := s.repo.Save(a); err != nil {
		return SweepResult{}, err
	}
	return result, nil
}

// TradeSide selects buy or sell.
type TradeSide int

const (
	// Buy exchanges USD for an asset at the current quote.
	Buy TradeSide = iota
	// Sell exchanges an asset holding back into USD.
	Sell
)

// TradeResult reports the executed price and total for one trade.
type TradeResult struct {
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Total    decimal.Decimal // USD debited (buy) or credited (sell)
}

// TradeAsset buys or sells a quantity of an asset at the simulator's
// current quote.
func (s *Service) TradeAsset(username, symbol string, quantity decimal.Decimal, side TradeSide) (TradeResult, error) {
	price, ok := s.quotes.Price(symbol)
	if !ok {
		return TradeResult{}, fmt.Errorf("%w: %s", ErrUnknownAsset, symbol)
	}
	if !quantity.IsPositive() {
		return TradeResult{}, ErrInvalidAmount
	}

	a, err := s.repo.Get(username)
	if err != nil {
		return TradeResult{}, err
	}

	total := quantity.Mul(price)
	switch side {
	case Buy:
		if a.USD.LessThan(total) {
			return TradeResult{}, ErrInsufficientFunds
		}
		a.USD = a.USD.Sub(total)
		a.Portfolio[symbol] = a.Holding(symbol).Add(quantity)
		a.AppendTransaction(fmt.Sprintf("Bought %s %s: -$%s", quantity.String(), symbol, total.StringFixed(2)))
	case Sell:
		held := a.Holding(symbol)
		if held.LessThan(quantity) {
			return TradeResult{}, ErrInsufficientHoldings
		}
		remaining := held.Sub(quantity)
		if remaining.IsZero() {
			delete(a.Portfolio, symbol)
		} else {
			a.Portfolio[symbol] = remaining
		}
		a.USD = a.USD.Add(total)
		a.AppendTransaction(fmt.Sprintf("Sold %s %s: +$%s", quantity.String(), symbol, total.StringFixed(2)))
	default:
		return TradeResult{}, fmt.Errorf("unknown trade side %d", side)
	}

	if err := s.repo.Save(a); err != nil {
		return TradeResult{}, err
	}
	return TradeResult{Symbol: symbol, Quantity: quantity, Price: price, Total: total}, nil
}
