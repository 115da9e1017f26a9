package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dji357a-gif/BANK1/internal/random"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fixedSource always returns the same uniform draw.
type fixedSource struct {
	u float64
}

func (f fixedSource) Digit() int                     { return 0 }
func (f fixedSource) Uniform(lo, hi float64) float64 { return f.u }

func seeds() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"BTC": dec("88079.58"),
		"ETH": dec("2987.31"),
		"XRP": dec("1.86"),
		"SOL": dec("125.07"),
	}
}

func TestNewSimulator_SeedsQuotes(t *testing.T) {
	sim := NewSimulator(seeds(), random.NewSeeded(1))

	price, ok := sim.Price("BTC")
	require.True(t, ok)
	assert.True(t, price.Equal(dec("88079.58")))

	_, ok = sim.Price("DOGE")
	assert.False(t, ok)
	assert.True(t, sim.Has("XRP"))
	assert.False(t, sim.Has("DOGE"))
}

func TestTick_AppliesDrift(t *testing.T) {
	sim := NewSimulator(seeds(), fixedSource{u: 0.01})
	sim.Tick()

	price, ok := sim.Price("XRP")
	require.True(t, ok)
	assert.True(t, price.Equal(dec("1.86").Mul(dec("1.01"))), "got %s", price)
}

func TestTick_BoundedMove(t *testing.T) {
	sim := NewSimulator(seeds(), random.NewSeeded(42))
	before, _ := sim.Price("ETH")
	sim.Tick()
	after, _ := sim.Price("ETH")

	ratio := after.Div(before)
	assert.True(t, ratio.GreaterThanOrEqual(dec("0.98")), "ratio %s", ratio)
	assert.True(t, ratio.LessThanOrEqual(dec("1.02")), "ratio %s", ratio)
}

func TestTick_PricesStayPositive(t *testing.T) {
	sim := NewSimulator(seeds(), random.NewSeeded(7))
	for i := 0; i < 1000; i++ {
		sim.Tick()
	}
	for _, q := range sim.Quotes() {
		assert.True(t, q.Price.IsPositive(), "%s went non-positive", q.Symbol)
	}
}

func TestQuotes_StableOrder(t *testing.T) {
	sim := NewSimulator(seeds(), random.NewSeeded(1))

	quotes := sim.Quotes()
	require.Len(t, quotes, 4)
	symbols := make([]string, len(quotes))
	for i, q := range quotes {
		symbols[i] = q.Symbol
	}
	assert.Equal(t, []string{"BTC", "ETH", "SOL", "XRP"}, symbols)
}
