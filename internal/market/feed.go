package market

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedPair error = errors.New("unsupported token pair")

// swap quotes keep 0.3% for the demo exchange and are valid for 5 minutes
var swapRateKeep = decimal.RequireFromString("0.997")
var swapFeePercentage = decimal.RequireFromString("0.3")
var swapPriceImpact = decimal.RequireFromString("0.1")

const quoteValidity = 5 * time.Minute

// Feed serves static demo market data: a fixed price table, synthesized
// 24h movement, swap quotes and a staking catalog. A real deployment
// would back this with an external price oracle.
type Feed struct {
	prices map[string]decimal.Decimal
}

func NewFeed() *Feed {
	return &Feed{
		prices: map[string]decimal.Decimal{
			"SOL":  decimal.RequireFromString("98.32"),
			"ETH":  decimal.RequireFromString("2847.52"),
			"BTC":  decimal.RequireFromString("43250.00"),
			"TEOS": decimal.RequireFromString("0.0045"),
		},
	}
}

// Prices returns the current price table keyed by asset symbol.
func (f *Feed) Prices() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(f.prices))
	for symbol, price := range f.prices {
		out[symbol] = price
	}
	return out
}

// PriceStats returns the price table with a deterministic 24h change in
// [-10%, +9%] and a synthetic volume derived from it.
func (f *Feed) PriceStats() map[string]PriceStat {
	million := decimal.NewFromInt(1_000_000)

	out := make(map[string]PriceStat, len(f.prices))
	for symbol, price := range f.prices {
		change := change24h(symbol)
		volume := price.Mul(million).Mul(decimal.NewFromInt(1).Add(change.Abs()))
		out[symbol] = PriceStat{
			Price:     price,
			Change24h: change,
			Volume24h: volume,
		}
	}
	return out
}

// SwapQuote prices a swap of amount fromToken into toToken.
func (f *Feed) SwapQuote(fromToken, toToken string, amount decimal.Decimal) (Quote, error) {
	fromPrice, ok := f.prices[fromToken]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnsupportedPair, fromToken)
	}
	toPrice, ok := f.prices[toToken]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnsupportedPair, toToken)
	}

	rate := fromPrice.Div(toPrice).Mul(swapRateKeep)

	return Quote{
		FromToken:     fromToken,
		ToToken:       toToken,
		InputAmount:   amount,
		OutputAmount:  amount.Mul(rate),
		Rate:          rate,
		FeePercentage: swapFeePercentage,
		PriceImpact:   swapPriceImpact,
		ValidUntil:    time.Now().UTC().Add(quoteValidity),
	}, nil
}

// StakingOpportunities returns the demo staking catalog.
func (f *Feed) StakingOpportunities() []StakingOpportunity {
	return []StakingOpportunity{
		{
			Protocol:    "TEOS Staking",
			Token:       "TEOS",
			APY:         decimal.RequireFromString("12.5"),
			TVL:         decimal.NewFromInt(2_400_000),
			RiskLevel:   "low",
			MinStake:    decimal.NewFromInt(100),
			LockPeriod:  0,
			Description: "Stake TEOS tokens to secure the network and earn rewards",
		},
		{
			Protocol:    "Pharaoh Vault",
			Token:       "TEOS",
			APY:         decimal.RequireFromString("18.2"),
			TVL:         decimal.NewFromInt(890_000),
			RiskLevel:   "medium",
			MinStake:    decimal.NewFromInt(500),
			LockPeriod:  30,
			Description: "High-yield vault with 30-day lock period",
		},
		{
			Protocol:    "SOL Staking",
			Token:       "SOL",
			APY:         decimal.RequireFromString("7.2"),
			TVL:         decimal.NewFromInt(15_000_000),
			RiskLevel:   "low",
			MinStake:    decimal.NewFromInt(1),
			LockPeriod:  0,
			Description: "Native Solana staking with validator rewards",
		},
		{
			Protocol:    "ETH 2.0 Staking",
			Token:       "ETH",
			APY:         decimal.RequireFromString("5.8"),
			TVL:         decimal.NewFromInt(45_000_000),
			RiskLevel:   "low",
			MinStake:    decimal.RequireFromString("0.1"),
			LockPeriod:  0,
			Description: "Ethereum 2.0 proof-of-stake rewards",
		},
	}
}

func change24h(symbol string) decimal.Decimal {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	pct := int64(h.Sum32()%20) - 10
	return decimal.NewFromInt(pct).Div(decimal.NewFromInt(100))
}
