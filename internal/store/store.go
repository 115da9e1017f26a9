// Package store persists bank accounts as a single JSON snapshot and keeps
// a card-number index alongside the username map. Writes are atomic: the
// snapshot is written to a temp file and renamed over the previous one, so
// an interrupted write never corrupts the store.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dji357a-gif/BANK1/internal/clock"
	"github.com/dji357a-gif/BANK1/internal/model"
	"github.com/dji357a-gif/BANK1/internal/random"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateUsername means the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUnknownAccount means no account exists under the username.
	ErrUnknownAccount = errors.New("account not found")

	// ErrCardSpaceExhausted means card generation kept colliding with
	// existing cards. Retryable; hitting it with a sane random source is
	// astronomically unlikely.
	ErrCardSpaceExhausted = errors.New("could not generate a unique card number")

	// ErrIO wraps snapshot load/save failures.
	ErrIO = errors.New("storage I/O failure")
)

// maxCardAttempts bounds the draw-and-check loop in Create.
const maxCardAttempts = 1000

// Options tune account provisioning.
type Options struct {
	// OpeningBalanceUSD is credited to every new account.
	OpeningBalanceUSD decimal.Decimal
}

// Store is a file-backed account repository. A single mutex serializes all
// access; every mutation is persisted as one atomic snapshot write.
type Store struct {
	path  string
	rnd   random.Source
	clk   clock.Clock
	opts  Options
	mu    sync.Mutex
	accts map[string]*model.Account
	cards map[string]string // card number -> username
}

// Open loads the snapshot at path, or starts empty if none exists yet.
func Open(path string, rnd random.Source, clk clock.Clock, opts Options) (*Store, error) {
	s := &Store{
		path:  path,
		rnd:   rnd,
		clk:   clk,
		opts:  opts,
		accts: make(map[string]*model.Account),
		cards: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the account; ErrUnknownAccount if absent.
func (s *Store) Get(username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, username)
	}
	return a.Clone(), nil
}

// FindByCard resolves a raw 16-digit card number to its owner's username.
func (s *Store) FindByCard(cardNumber string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.cards[cardNumber]
	return username, ok
}

// Usernames returns all registered usernames.
func (s *Store) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.accts))
	for u := range s.accts {
		out = append(out, u)
	}
	return out
}

// Create registers a new account: unique card number, fresh CVV and expiry,
// opening balance. The snapshot is persisted before Create returns, so a
// successful call is durable.
func (s *Store) Create(username, password string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accts[username]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateUsername, username)
	}

	card, err := s.newCardNumber()
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	a := &model.Account{
		Username:   username,
		Password:   password,
		CardNumber: card,
		CVV:        strconv.Itoa(int(s.rnd.Uniform(100, 1000))),
		ExpMonth:   1 + int(s.rnd.Uniform(0, 12)),
		ExpYear:    now.Year() + 3,
		USD:        s.opts.OpeningBalanceUSD,
		UAH:        decimal.Zero,
		CreditDebt: decimal.Zero,
		Portfolio:  make(map[string]decimal.Decimal),
	}

	s.accts[username] = a.Clone()
	s.cards[card] = username
	if err := s.persist(); err != nil {
		// Roll the indexes back so a failed write leaves no phantom account.
		delete(s.accts, username)
		delete(s.cards, card)
		return nil, err
	}
	return a, nil
}

// Save persists mutated accounts. All given accounts land in the same
// snapshot write, so multi-account operations like transfers have a single
// durability point.
func (s *Store) Save(accounts ...*model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accounts {
		if _, ok := s.accts[a.Username]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAccount, a.Username)
		}
		s.accts[a.Username] = a.Clone()
	}
	return s.persist()
}

// newCardNumber draws 16 random digits until the candidate is absent from
// the card index. Caller holds the mutex.
func (s *Store) newCardNumber() (string, error) {
	for attempt := 0; attempt < maxCardAttempts; attempt++ {
		var b strings.Builder
		b.Grow(model.CardNumberLength)
		for i := 0; i < model.CardNumberLength; i++ {
			b.WriteByte(byte('0' + s.rnd.Digit()))
		}
		card := b.String()
		if _, taken := s.cards[card]; !taken {
			return card, nil
		}
	}
	return "", ErrCardSpaceExhausted
}
