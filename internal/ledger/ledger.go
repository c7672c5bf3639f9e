package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
	"teoswallet/internal/ident"
)

var ErrNotFound error = errors.New("transaction not found")

// Ledger is the in-memory, append-mostly collection of transaction
// records. The only permitted mutation after insert is the lazy
// pending -> completed transition performed by Get.
type Ledger struct {
	mu    sync.RWMutex
	txs   map[string]*Transaction
	order []string
}

func NewLedger() *Ledger {
	return &Ledger{
		txs: make(map[string]*Transaction),
	}
}

// Record allocates a hash and inserts a pending transaction. Input
// validation is the caller's responsibility.
func (l *Ledger) Record(fromAddr, toAddr string, amount decimal.Decimal, symbol string, network chain.Network, fee decimal.Decimal) (Transaction, error) {
	hash, err := ident.NewTxHash()
	if err != nil {
		return Transaction{}, fmt.Errorf("new transaction hash: %w", err)
	}

	tx := Transaction{
		Hash:        hash,
		FromAddress: fromAddr,
		ToAddress:   toAddr,
		Amount:      amount,
		Symbol:      symbol,
		Network:     network,
		Status:      StatusPending,
		Timestamp:   time.Now().UTC(),
		Fee:         fee,
	}

	l.mu.Lock()
	l.txs[hash] = &tx
	l.order = append(l.order, hash)
	l.mu.Unlock()

	return tx, nil
}

// Get returns the transaction with the given hash. Reading a pending
// transaction confirms it: the status flips to completed before the
// record is returned. The flip happens once; later reads return the
// record unchanged. This simulated confirmation stands in for a real
// chain submission.
func (l *Ledger) Get(hash string) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.txs[hash]
	if !ok {
		return Transaction{}, ErrNotFound
	}

	if tx.Status == StatusPending {
		tx.Status = StatusCompleted
		tx.Confirmations = confirmedDepth
	}

	return *tx, nil
}

// ListByAddress returns all transactions where the address is the
// sender or the recipient, newest first. Listing does not confirm
// pending transactions.
func (l *Ledger) ListByAddress(address string) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Transaction, 0)
	for i := len(l.order) - 1; i >= 0; i-- {
		tx := l.txs[l.order[i]]
		if tx.FromAddress == address || tx.ToAddress == address {
			out = append(out, *tx)
		}
	}
	return out
}
