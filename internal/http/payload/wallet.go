package payload

import (
	"errors"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
	"teoswallet/internal/core"
)

type CreateWalletRequest struct {
	Network string `json:"network"`
	Type    string `json:"type"`
}

// Validate accepts empty fields; absent values fall back to the
// defaults below and unsupported networks are the core's call.
func (c CreateWalletRequest) Validate() error {
	return nil
}

func (c CreateWalletRequest) NetworkOrDefault() chain.Network {
	if c.Network == "" {
		return chain.Solana
	}
	return chain.Network(c.Network)
}

func (c CreateWalletRequest) TypeOrDefault() string {
	if c.Type == "" {
		return "mobile"
	}
	return c.Type
}

type SendRequest struct {
	ToAddress string          `json:"to_address"`
	Amount    decimal.Decimal `json:"amount"`
	Symbol    string          `json:"symbol"`
	Network   string          `json:"network"`
}

func (s SendRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ToAddress, validation.Required),
		validation.Field(&s.Amount, validation.By(positiveAmount)),
	)
}

func (s SendRequest) ToMessage() core.SendMessage {
	msg := core.SendMessage{
		ToAddress: s.ToAddress,
		Amount:    s.Amount,
		Symbol:    s.Symbol,
		Network:   chain.Network(s.Network),
	}
	if msg.Symbol == "" {
		msg.Symbol = "SOL"
	}
	if msg.Network == "" {
		msg.Network = chain.Solana
	}
	return msg
}

func positiveAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if !amount.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}
