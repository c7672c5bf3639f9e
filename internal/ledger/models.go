package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// confirmations reported once a transaction flips to completed
const confirmedDepth = 12

// Transaction is a recorded transfer. Status only ever moves
// pending -> completed, never back.
type Transaction struct {
	Hash          string          `json:"hash"`
	FromAddress   string          `json:"from_address"`
	ToAddress     string          `json:"to_address"`
	Amount        decimal.Decimal `json:"amount"`
	Symbol        string          `json:"symbol"`
	Network       chain.Network   `json:"network"`
	Status        Status          `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
	Fee           decimal.Decimal `json:"fee"`
	Confirmations int             `json:"confirmations,omitempty"`
}
