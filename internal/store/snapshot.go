package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dji357a-gif/BANK1/internal/model"
	"github.com/shopspring/decimal"
)

// snapshot is the persisted document: one JSON object mapping username to
// account record. Timestamps are epoch seconds so the file stays portable
// across front-ends.
type snapshot struct {
	Users map[string]accountRecord `json:"users"`
}

type accountRecord struct {
	Password     string                     `json:"password"`
	CardNumber   string                     `json:"card_number"` // no separators; lookup key
	CardView     string                     `json:"card_view"`   // cached display form
	CVV          string                     `json:"cvv"`
	ExpMonth     int                        `json:"exp_month"`
	ExpYear      int                        `json:"exp_year"`
	USD          decimal.Decimal            `json:"usd"`
	UAH          decimal.Decimal            `json:"uah"`
	CreditDebt   decimal.Decimal            `json:"credit_debt"`
	CreditDueAt  *int64                     `json:"credit_due_timestamp"`
	Transactions []string                   `json:"transactions"`
	Portfolio    map[string]decimal.Decimal `json:"portfolio"`
	Deposits     []depositRecord            `json:"deposits"`
}

type depositRecord struct {
	Principal decimal.Decimal `json:"principal"`
	MaturesAt int64           `json:"matures_at"`
}

func toRecord(a *model.Account) accountRecord {
	rec := accountRecord{
		Password:     a.Password,
		CardNumber:   a.CardNumber,
		CardView:     a.CardDisplay(),
		CVV:          a.CVV,
		ExpMonth:     a.ExpMonth,
		ExpYear:      a.ExpYear,
		USD:          a.USD,
		UAH:          a.UAH,
		CreditDebt:   a.CreditDebt,
		Transactions: a.Transactions,
		Portfolio:    a.Portfolio,
	}
	if a.CreditDueAt != nil {
		due := a.CreditDueAt.Unix()
		rec.CreditDueAt = &due
	}
	for _, d := range a.Deposits {
		rec.Deposits = append(rec.Deposits, depositRecord{
			Principal: d.Principal,
			MaturesAt: d.MaturesAt.Unix(),
		})
	}
	return rec
}

func fromRecord(username string, rec accountRecord) *model.Account {
	a := &model.Account{
		Username:     username,
		Password:     rec.Password,
		CardNumber:   rec.CardNumber,
		CVV:          rec.CVV,
		ExpMonth:     rec.ExpMonth,
		ExpYear:      rec.ExpYear,
		USD:          rec.USD,
		UAH:          rec.UAH,
		CreditDebt:   rec.CreditDebt,
		Transactions: rec.Transactions,
		Portfolio:    rec.Portfolio,
	}
	if a.Portfolio == nil {
		a.Portfolio = make(map[string]decimal.Decimal)
	}
	if rec.CreditDueAt != nil {
		due := time.Unix(*rec.CreditDueAt, 0)
		a.CreditDueAt = &due
	}
	for _, d := range rec.Deposits {
		a.Deposits = append(a.Deposits, model.Deposit{
			Principal: d.Principal,
			MaturesAt: time.Unix(d.MaturesAt, 0),
		})
	}
	return a
}

// load reads the snapshot from disk. A missing file means an empty store.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading snapshot: %v", ErrIO, err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: parsing snapshot: %v", ErrIO, err)
	}
	for username, rec := range snap.Users {
		a := fromRecord(username, rec)
		s.accts[username] = a
		s.cards[a.CardNumber] = username
	}
	return nil
}

// persist writes the whole snapshot atomically: temp file, then rename over
// the previous snapshot. Caller holds the mutex.
func (s *Store) persist() error {
	snap := snapshot{Users: make(map[string]accountRecord, len(s.accts))}
	for username, a := range s.accts {
		snap.Users[username] = toRecord(a)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrIO, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing snapshot: %v", ErrIO, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing snapshot: %v", ErrIO, err)
	}
	return nil
}
