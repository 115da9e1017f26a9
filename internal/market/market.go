package market

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dji357a-gif/BANK1/internal/random"
)

// driftBound is the maximum relative price move per tick, in either
// direction. Staying well inside (-1, 1) keeps every price positive for any
// finite number of ticks.
const driftBound = 0.02

// Quote is one asset's current price.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
}

// Simulator maintains a live price per tradable asset and advances all of
// them by a bounded multiplicative random walk on each Tick. Prices drift
// only when queried, so price history is an artifact of query frequency,
// not elapsed time.
type Simulator struct {
	symbols []string // stable display order
	prices  map[string]decimal.Decimal
	rnd     random.Source
}

// NewSimulator seeds a Simulator with initial quotes.
func NewSimulator(seeds map[string]decimal.Decimal, rnd random.Source) *Simulator {
	symbols := make([]string, 0, len(seeds))
	prices := make(map[string]decimal.Decimal, len(seeds))
	for sym, price := range seeds {
		symbols = append(symbols, sym)
		prices[sym] = price
	}
	sort.Strings(symbols)
	return &Simulator{symbols: symbols, prices: prices, rnd: rnd}
}

// Has reports whether a symbol is tradable.
func (s *Simulator) Has(symbol string) bool {
	_, ok := s.prices[symbol]
	return ok
}

// Price returns the current quote for a symbol.
func (s *Simulator) Price(symbol string) (decimal.Decimal, bool) {
	p, ok := s.prices[symbol]
	return p, ok
}

// Tick advances every price by an independent draw of 1 + U(-2%, +2%).
// Callers invoke it once per query context, not once per symbol lookup.
func (s *Simulator) Tick() {
	for _, sym := range s.symbols {
		change := s.rnd.Uniform(-driftBound, driftBound)
		factor := decimal.NewFromFloat(1 + change)
		s.prices[sym] = s.prices[sym].Mul(factor)
	}
}

// Quotes returns all current prices in stable symbol order.
func (s *Simulator) Quotes() []Quote {
	out := make([]Quote, 0, len(s.symbols))
	for _, sym := range s.symbols {
		out = append(out, Quote{Symbol: sym, Price: s.prices[sym]})
	}
	return out
}
