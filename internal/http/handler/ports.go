package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
	"teoswallet/internal/core"
	"teoswallet/internal/ledger"
	"teoswallet/internal/market"
	"teoswallet/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	CreateWallet(ctx context.Context, network chain.Network, walletType string) (wallet.Wallet, error)
	Balance(ctx context.Context, walletID string) (core.BalanceReport, error)
	Send(ctx context.Context, walletID string, msg core.SendMessage) (ledger.Transaction, error)
	Transaction(ctx context.Context, hash string) (ledger.Transaction, error)
	History(ctx context.Context, walletID string) ([]ledger.Transaction, error)
	Receive(ctx context.Context, walletID string) (core.ReceiveInfo, error)
	Rewards(ctx context.Context, walletID string) (core.MiningRewards, error)
	NFTCollection(ctx context.Context, walletID string) ([]core.NFT, error)
}

//counterfeiter:generate -o fake -fake-name MarketService . MarketService
type MarketService interface {
	SwapQuote(fromToken, toToken string, amount decimal.Decimal) (market.Quote, error)
	PriceStats() map[string]market.PriceStat
	StakingOpportunities() []market.StakingOpportunity
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
