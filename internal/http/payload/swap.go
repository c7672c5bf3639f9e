package payload

import (
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type SwapQuoteRequest struct {
	FromToken string          `json:"from_token"`
	ToToken   string          `json:"to_token"`
	Amount    decimal.Decimal `json:"amount"`
}

func (s SwapQuoteRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FromToken, validation.Required),
		validation.Field(&s.ToToken, validation.Required),
		validation.Field(&s.Amount, validation.By(positiveAmount)),
	)
}
