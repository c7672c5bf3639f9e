package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote describes a swap of one token for another at the current
// demo rates. Quotes are informational; nothing reserves the rate.
type Quote struct {
	FromToken     string          `json:"from_token"`
	ToToken       string          `json:"to_token"`
	InputAmount   decimal.Decimal `json:"input_amount"`
	OutputAmount  decimal.Decimal `json:"output_amount"`
	Rate          decimal.Decimal `json:"rate"`
	FeePercentage decimal.Decimal `json:"fee_percentage"`
	PriceImpact   decimal.Decimal `json:"price_impact"`
	ValidUntil    time.Time       `json:"valid_until"`
}

// PriceStat is a price point with synthesized 24h movement.
type PriceStat struct {
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
	Volume24h decimal.Decimal `json:"volume_24h"`
}

type StakingOpportunity struct {
	Protocol    string          `json:"protocol"`
	Token       string          `json:"token"`
	APY         decimal.Decimal `json:"apy"`
	TVL         decimal.Decimal `json:"tvl"`
	RiskLevel   string          `json:"risk_level"`
	MinStake    decimal.Decimal `json:"min_stake"`
	LockPeriod  int             `json:"lock_period"`
	Description string          `json:"description"`
}
