package core

import (
	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
	"teoswallet/internal/ledger"
	"teoswallet/internal/user"
	"teoswallet/internal/wallet"
	tokenIssuer "teoswallet/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletRepository . WalletRepository
type WalletRepository interface {
	Create(network chain.Network, walletType string, seedBalances map[string]decimal.Decimal) (wallet.Wallet, error)
	Get(id string) (wallet.Wallet, error)
	Debit(id, symbol string, amount decimal.Decimal) (wallet.Wallet, error)
	TotalValue(id string, prices map[string]decimal.Decimal) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name TransactionRepository . TransactionRepository
type TransactionRepository interface {
	Record(fromAddr, toAddr string, amount decimal.Decimal, symbol string, network chain.Network, fee decimal.Decimal) (ledger.Transaction, error)
	Get(hash string) (ledger.Transaction, error)
	ListByAddress(address string) []ledger.Transaction
}

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	GetByUsername(username string) (user.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name PriceSource . PriceSource
type PriceSource interface {
	Prices() map[string]decimal.Decimal
}
