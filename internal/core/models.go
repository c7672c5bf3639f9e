package core

import (
	"time"

	"github.com/shopspring/decimal"
	"teoswallet/internal/chain"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendMessage is a validated outbound transfer request.
type SendMessage struct {
	ToAddress string
	Amount    decimal.Decimal
	Symbol    string
	Network   chain.Network
}

type AssetBalance struct {
	Symbol  string          `json:"symbol"`
	Balance decimal.Decimal `json:"balance"`
	Price   decimal.Decimal `json:"price"`
	Value   decimal.Decimal `json:"value"`
	Network chain.Network   `json:"network"`
}

type BalanceReport struct {
	WalletID   string          `json:"wallet_id"`
	TotalValue decimal.Decimal `json:"total_value"`
	Balances   []AssetBalance  `json:"balances"`
	Timestamp  time.Time       `json:"timestamp"`
}

type ReceiveInfo struct {
	Address   string        `json:"address"`
	Network   chain.Network `json:"network"`
	QRCodeURL string        `json:"qr_code_url"`
}

type MiningRewards struct {
	DailyReward  decimal.Decimal `json:"daily_reward"`
	TotalMined   decimal.Decimal `json:"total_mined"`
	MiningPower  decimal.Decimal `json:"mining_power"`
	NextRewardIn string          `json:"next_reward_in"`
	Tier         string          `json:"tier"`
	Multiplier   decimal.Decimal `json:"multiplier"`
}

type NFT struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Collection string          `json:"collection"`
	Image      string          `json:"image"`
	Rarity     string          `json:"rarity"`
	Value      decimal.Decimal `json:"value"`
}
