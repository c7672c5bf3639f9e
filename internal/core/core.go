package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"teoswallet/internal/chain"
	"teoswallet/internal/ledger"
	"teoswallet/internal/user"
	"teoswallet/internal/wallet"
	tokenIssuer "teoswallet/pkg/jwt"
)

var timeNow = func() time.Time { return time.Now().UTC() }

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrUnsupportedNetwork error = errors.New("unsupported network")
var ErrUnsupportedAsset error = errors.New("unsupported asset")
var ErrInvalidAddress error = errors.New("invalid recipient address")
var ErrInvalidAmount error = errors.New("amount must be positive")
var ErrInsufficientBalance error = errors.New("insufficient balance")

// mockFee is the flat fee recorded on every transfer. There is no fee
// market in the simulation.
var mockFee = decimal.RequireFromString("0.001")

// seedBalances are granted to every new wallet so the demo flows have
// something to spend.
var seedBalances = map[string]decimal.Decimal{
	"SOL":  decimal.RequireFromString("12.45"),
	"ETH":  decimal.RequireFromString("0.85"),
	"BTC":  decimal.RequireFromString("0.0234"),
	"TEOS": decimal.RequireFromString("15420.50"),
}

// Teos owns the wallet ledger: it validates and executes transfers
// against the wallet store and records the resulting transactions.
type Teos struct {
	logs      *zap.SugaredLogger
	wallets   WalletRepository
	txs       TransactionRepository
	users     UserRepository
	jwtIssuer JWTIssuer
	prices    PriceSource
}

func NewTeos(logger *zap.SugaredLogger, wallets WalletRepository, txs TransactionRepository, users UserRepository, jwt JWTIssuer, prices PriceSource) *Teos {
	return &Teos{
		logs:      logger,
		wallets:   wallets,
		txs:       txs,
		users:     users,
		jwtIssuer: jwt,
		prices:    prices,
	}
}

// Authenticate checks the credentials against the demo accounts and
// returns a signed JWT for the user.
func (t *Teos) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	u, err := t.users.GetByUsername(msg.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   u.Username,
		Subject:    u.ID,
		Expiration: 24,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// CreateWallet allocates a wallet on the given network with the demo
// seed balances.
func (t *Teos) CreateWallet(ctx context.Context, network chain.Network, walletType string) (wallet.Wallet, error) {
	created, err := t.wallets.Create(network, walletType, seedBalances)
	if err != nil {
		if errors.Is(err, wallet.ErrUnsupportedNetwork) {
			return wallet.Wallet{}, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, network)
		}
		return wallet.Wallet{}, fmt.Errorf("create wallet: %w", err)
	}

	t.logs.Infow("wallet created",
		"wallet_id", created.ID,
		"network", created.Network,
		"type", created.Type)

	return created, nil
}

// Wallet returns the wallet with the given id.
func (t *Teos) Wallet(ctx context.Context, walletID string) (wallet.Wallet, error) {
	w, err := t.wallets.Get(walletID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return wallet.Wallet{}, ErrWalletNotFound
		}
		return wallet.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// Balance prices each held asset and sums the wallet's total value.
// Valuation is display only; debits never depend on prices.
func (t *Teos) Balance(ctx context.Context, walletID string) (BalanceReport, error) {
	w, err := t.Wallet(ctx, walletID)
	if err != nil {
		return BalanceReport{}, err
	}

	prices := t.prices.Prices()

	balances := make([]AssetBalance, 0, len(w.Balances))
	for symbol, balance := range w.Balances {
		price := prices[symbol]
		network, _ := chain.ForSymbol(symbol)
		balances = append(balances, AssetBalance{
			Symbol:  symbol,
			Balance: balance,
			Price:   price,
			Value:   balance.Mul(price),
			Network: network,
		})
	}

	total, err := t.wallets.TotalValue(walletID, prices)
	if err != nil {
		return BalanceReport{}, fmt.Errorf("total value: %w", err)
	}

	return BalanceReport{
		WalletID:   walletID,
		TotalValue: total,
		Balances:   balances,
		Timestamp:  timeNow(),
	}, nil
}

// Send executes an outbound transfer: it validates the request against
// the sender's wallet, debits the balance and records the transaction.
// The transaction becomes visible only after the debit succeeded, so a
// reader never observes one without the other.
func (t *Teos) Send(ctx context.Context, walletID string, msg SendMessage) (ledger.Transaction, error) {
	w, err := t.Wallet(ctx, walletID)
	if err != nil {
		return ledger.Transaction{}, err
	}

	if !msg.Amount.IsPositive() {
		return ledger.Transaction{}, ErrInvalidAmount
	}

	if !chain.ValidateAddress(msg.ToAddress, msg.Network) {
		return ledger.Transaction{}, fmt.Errorf("%w: %q on %q", ErrInvalidAddress, msg.ToAddress, msg.Network)
	}

	if _, ok := w.Balances[msg.Symbol]; !ok {
		return ledger.Transaction{}, fmt.Errorf("%w: %q", ErrUnsupportedAsset, msg.Symbol)
	}

	debited, err := t.wallets.Debit(walletID, msg.Symbol, msg.Amount)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrNotFound):
			return ledger.Transaction{}, ErrWalletNotFound
		case errors.Is(err, wallet.ErrUnsupportedAsset):
			return ledger.Transaction{}, fmt.Errorf("%w: %q", ErrUnsupportedAsset, msg.Symbol)
		case errors.Is(err, wallet.ErrInsufficientBalance):
			return ledger.Transaction{}, ErrInsufficientBalance
		}
		return ledger.Transaction{}, fmt.Errorf("debit wallet: %w", err)
	}

	tx, err := t.txs.Record(w.Address, msg.ToAddress, msg.Amount, msg.Symbol, msg.Network, mockFee)
	if err != nil {
		// The debit already happened and there is no compensation
		// mechanism; surface the fault as internal.
		return ledger.Transaction{}, fmt.Errorf("record transaction: %w", err)
	}

	t.logs.Infow("transfer executed",
		"wallet_id", walletID,
		"tx_hash", tx.Hash,
		"symbol", msg.Symbol,
		"amount", msg.Amount,
		"remaining", debited.Balances[msg.Symbol])

	return tx, nil
}

// Transaction looks up a transaction by hash. The first read of a
// pending transaction confirms it (see ledger.Get).
func (t *Teos) Transaction(ctx context.Context, hash string) (ledger.Transaction, error) {
	tx, err := t.txs.Get(hash)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return ledger.Transaction{}, ErrTransactionNotFound
		}
		return ledger.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// History lists the transactions where the wallet's address is sender
// or recipient. Addresses, not wallet ids, are the join key.
func (t *Teos) History(ctx context.Context, walletID string) ([]ledger.Transaction, error) {
	w, err := t.Wallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return t.txs.ListByAddress(w.Address), nil
}

// Receive returns the wallet's deposit address and QR code location.
func (t *Teos) Receive(ctx context.Context, walletID string) (ReceiveInfo, error) {
	w, err := t.Wallet(ctx, walletID)
	if err != nil {
		return ReceiveInfo{}, err
	}

	return ReceiveInfo{
		Address:   w.Address,
		Network:   w.Network,
		QRCodeURL: fmt.Sprintf("/api/qr/%s", w.Address),
	}, nil
}

// Rewards returns the static demo mining rewards for an existing wallet.
func (t *Teos) Rewards(ctx context.Context, walletID string) (MiningRewards, error) {
	if _, err := t.Wallet(ctx, walletID); err != nil {
		return MiningRewards{}, err
	}

	return MiningRewards{
		DailyReward:  decimal.NewFromInt(75),
		TotalMined:   decimal.NewFromInt(2450),
		MiningPower:  decimal.RequireFromString("125.5"),
		NextRewardIn: "2h 15m",
		Tier:         "Pharaoh",
		Multiplier:   decimal.RequireFromString("1.5"),
	}, nil
}

// NFTCollection returns the static demo collection for an existing wallet.
func (t *Teos) NFTCollection(ctx context.Context, walletID string) ([]NFT, error) {
	if _, err := t.Wallet(ctx, walletID); err != nil {
		return nil, err
	}

	return []NFT{
		{
			ID:         "pharaoh_001",
			Name:       "Golden Pharaoh Mask",
			Collection: "Egyptian Artifacts",
			Image:      "/api/nft/image/pharaoh_001",
			Rarity:     "Legendary",
			Value:      decimal.RequireFromString("2.5"),
		},
		{
			ID:         "pyramid_042",
			Name:       "Great Pyramid Blueprint",
			Collection: "Ancient Architecture",
			Image:      "/api/nft/image/pyramid_042",
			Rarity:     "Epic",
			Value:      decimal.RequireFromString("1.2"),
		},
	}, nil
}
