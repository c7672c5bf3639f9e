package wallet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
	"teoswallet/internal/ident"
)

var ErrNotFound error = errors.New("wallet not found")
var ErrUnsupportedNetwork error = errors.New("unsupported network")
var ErrUnsupportedAsset error = errors.New("unsupported asset")
var ErrInsufficientBalance error = errors.New("insufficient balance")

// Store is the in-memory wallet store and the sole mutator of balances.
// Wallets live for the process lifetime and are never deleted. Each
// wallet carries its own lock so unrelated debits do not serialize.
type Store struct {
	mu      sync.RWMutex
	wallets map[string]*entry
}

type entry struct {
	mu     sync.Mutex
	wallet Wallet
}

func NewStore() *Store {
	return &Store{
		wallets: make(map[string]*entry),
	}
}

// Create allocates a wallet with a fresh id and a demo address shaped
// for the network, seeds the given balances and inserts the record.
func (s *Store) Create(network chain.Network, walletType string, seedBalances map[string]decimal.Decimal) (Wallet, error) {
	if !chain.Supported(network) {
		return Wallet{}, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, network)
	}

	id, err := ident.NewWalletID()
	if err != nil {
		return Wallet{}, fmt.Errorf("new wallet id: %w", err)
	}

	address, err := chain.NewAddress(network)
	if err != nil {
		return Wallet{}, fmt.Errorf("new %q address: %w", network, err)
	}

	balances := make(map[string]decimal.Decimal, len(seedBalances))
	for symbol, amount := range seedBalances {
		balances[symbol] = amount
	}

	created := Wallet{
		ID:        id,
		Address:   address,
		Network:   network,
		Type:      walletType,
		CreatedAt: time.Now().UTC(),
		Balances:  balances,
	}

	s.mu.Lock()
	s.wallets[id] = &entry{wallet: created}
	s.mu.Unlock()

	return created.clone(), nil
}

// Get returns a snapshot of the wallet with the given id.
func (s *Store) Get(id string) (Wallet, error) {
	ent, err := s.entry(id)
	if err != nil {
		return Wallet{}, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()
	return ent.wallet.clone(), nil
}

// Debit atomically decrements the wallet's balance for one asset,
// guarded by a sufficiency check. On success it returns the post-debit
// snapshot; on failure no balance changes.
func (s *Store) Debit(id, symbol string, amount decimal.Decimal) (Wallet, error) {
	ent, err := s.entry(id)
	if err != nil {
		return Wallet{}, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	balance, ok := ent.wallet.Balances[symbol]
	if !ok {
		return Wallet{}, fmt.Errorf("%w: %q", ErrUnsupportedAsset, symbol)
	}

	if balance.LessThan(amount) {
		return Wallet{}, fmt.Errorf("%w: %s %s available", ErrInsufficientBalance, balance, symbol)
	}

	ent.wallet.Balances[symbol] = balance.Sub(amount)
	return ent.wallet.clone(), nil
}

// TotalValue sums balance times price over the wallet's assets. Assets
// missing from the price table count as zero.
func (s *Store) TotalValue(id string, prices map[string]decimal.Decimal) (decimal.Decimal, error) {
	ent, err := s.entry(id)
	if err != nil {
		return decimal.Zero, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	total := decimal.Zero
	for symbol, balance := range ent.wallet.Balances {
		price, ok := prices[symbol]
		if !ok {
			continue
		}
		total = total.Add(balance.Mul(price))
	}
	return total, nil
}

func (s *Store) entry(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ent, ok := s.wallets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ent, nil
}
