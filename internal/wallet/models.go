package wallet

import (
	"time"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
)

// Wallet is a demo wallet record. Balances are keyed by asset symbol
// and are never negative.
type Wallet struct {
	ID        string                     `json:"id"`
	Address   string                     `json:"address"`
	Network   chain.Network              `json:"network"`
	Type      string                     `json:"type"`
	CreatedAt time.Time                  `json:"created_at"`
	Balances  map[string]decimal.Decimal `json:"balances"`
}

func (w Wallet) clone() Wallet {
	balances := make(map[string]decimal.Decimal, len(w.Balances))
	for symbol, amount := range w.Balances {
		balances[symbol] = amount
	}
	out := w
	out.Balances = balances
	return out
}
