package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/clock"
	"github.com/dji357a-gif/BANK1/internal/config"
	"github.com/dji357a-gif/BANK1/internal/currency"
	"github.com/dji357a-gif/BANK1/internal/ledger"
	"github.com/dji357a-gif/BANK1/internal/market"
	"github.com/dji357a-gif/BANK1/internal/random"
	"github.com/dji357a-gif/BANK1/internal/store"
)

// session wires the engine, store, and market for one command invocation.
type session struct {
	cfg      *config.Config
	engine   *ledger.Service
	market   *market.Simulator
	clk      clock.Clock
	username string
}

// openSession loads config and storage. With authenticate set it verifies
// the --user/--password credentials and runs the on-entry checks (penalty
// accrual and deposit sweep), printing their outcomes like the original
// login screen did.
func openSession(cmd *cobra.Command, authenticate bool) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	username, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	clk := clock.System{}
	rnd := random.NewSeeded(time.Now().UnixNano())

	st, err := store.Open(cfg.Storage.Path, rnd, clk, store.Options{
		OpeningBalanceUSD: decimal.NewFromFloat(cfg.Account.OpeningBalanceUSD),
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	seeds := make(map[string]decimal.Decimal, len(cfg.Market))
	for sym, price := range cfg.Market {
		seeds[sym] = decimal.NewFromFloat(price)
	}
	sim := market.NewSimulator(seeds, rnd)

	engine := ledger.NewService(st, sim, clk, termsFromConfig(cfg))
	sess := &session{cfg: cfg, engine: engine, market: sim, clk: clk, username: username}

	if authenticate {
		if username == "" {
			return nil, fmt.Errorf("--user is required")
		}
		report, err := engine.Login(username, password, clk.Now())
		if err != nil {
			return nil, err
		}
		out := cmd.OutOrStdout()
		if p := report.Penalty; p != nil {
			fmt.Fprintf(out, "WARNING: credit overdue, debt grew from %s to %s\n",
				currency.USD(p.OldDebt), currency.USD(p.NewDebt))
		}
		if report.Sweep.Matured > 0 {
			fmt.Fprintf(out, "Deposit payout: +%s (%d matured)\n",
				currency.USD(report.Sweep.Payout), report.Sweep.Matured)
		}
	}
	return sess, nil
}

func termsFromConfig(cfg *config.Config) ledger.Terms {
	return ledger.Terms{
		ExchangeRate:      decimal.NewFromFloat(cfg.Exchange.Rate),
		CreditFee:         decimal.NewFromFloat(cfg.Credit.OriginationFee),
		CreditTerm:        time.Duration(cfg.Credit.TermSeconds) * time.Second,
		CreditPenaltyRate: decimal.NewFromFloat(cfg.Credit.PenaltyRate),
		DepositTerm:       time.Duration(cfg.Deposit.TermSeconds) * time.Second,
		DepositRate:       decimal.NewFromFloat(cfg.Deposit.Rate),
	}
}

// parseAmount converts CLI input to a decimal amount. Non-numeric input is
// reported the same way as a non-positive amount.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, raw)
	}
	return amount, nil
}
