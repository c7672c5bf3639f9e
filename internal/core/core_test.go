package core_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"teoswallet/internal/chain"
	"teoswallet/internal/core"
	"teoswallet/internal/ledger"
	"teoswallet/internal/market"
	"teoswallet/internal/user"
	"teoswallet/internal/wallet"
	tokenIssuer "teoswallet/pkg/jwt"
)

var _ = Describe("Teos", func() {
	var (
		teos        *core.Teos
		walletStore *wallet.Store
		txLedger    *ledger.Ledger
		users       *user.Store
		jwtService  *tokenIssuer.JWTService
		ctx         context.Context

		validSolanaAddr string
	)

	BeforeEach(func() {
		walletStore = wallet.NewStore()
		txLedger = ledger.NewLedger()
		jwtService = tokenIssuer.NewJWTService([]byte("test-secret"))

		hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		users = user.NewStore(user.User{
			ID:           uuid.NewString(),
			Username:     "cleopatra",
			PasswordHash: string(hash),
		})

		teos = core.NewTeos(
			zap.NewNop().Sugar(),
			walletStore,
			txLedger,
			users,
			jwtService,
			market.NewFeed())

		ctx = context.Background()
		validSolanaAddr = strings.Repeat("A", 44)
	})

	Describe("Authenticate", func() {
		When("the credentials are correct", func() {
			It("returns a verifiable signed token", func() {
				token, err := teos.Authenticate(ctx, core.AuthMessage{
					Username: "cleopatra",
					Password: "testpass",
				})
				Expect(err).NotTo(HaveOccurred())

				claims, err := jwtService.Validate(token)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["username"]).To(Equal("cleopatra"))
			})
		})

		When("the user does not exist", func() {
			It("returns user not found", func() {
				_, err := teos.Authenticate(ctx, core.AuthMessage{
					Username: "nefertiti",
					Password: "testpass",
				})
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the password does not match", func() {
			It("returns incorrect password", func() {
				_, err := teos.Authenticate(ctx, core.AuthMessage{
					Username: "cleopatra",
					Password: "wrong",
				})
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})
	})

	Describe("CreateWallet", func() {
		It("seeds the demo balances", func() {
			created, err := teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())

			Expect(created.Balances["SOL"].Equal(decimal.RequireFromString("12.45"))).To(BeTrue())
			Expect(created.Balances["ETH"].Equal(decimal.RequireFromString("0.85"))).To(BeTrue())
			Expect(created.Balances["BTC"].Equal(decimal.RequireFromString("0.0234"))).To(BeTrue())
			Expect(created.Balances["TEOS"].Equal(decimal.RequireFromString("15420.50"))).To(BeTrue())
		})

		It("rejects unsupported networks", func() {
			_, err := teos.CreateWallet(ctx, chain.Network("dogecoin"), "mobile")
			Expect(err).To(MatchError(core.ErrUnsupportedNetwork))
		})
	})

	Describe("Send", func() {
		var created wallet.Wallet

		BeforeEach(func() {
			var err error
			created, err = teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())
		})

		When("the transfer is valid", func() {
			It("debits the sender and records a matching pending transaction", func() {
				tx, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.RequireFromString("3"),
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).NotTo(HaveOccurred())

				Expect(tx.FromAddress).To(Equal(created.Address))
				Expect(tx.ToAddress).To(Equal(validSolanaAddr))
				Expect(tx.Amount.Equal(decimal.RequireFromString("3"))).To(BeTrue())
				Expect(tx.Symbol).To(Equal("SOL"))
				Expect(tx.Status).To(Equal(ledger.StatusPending))
				Expect(tx.Fee.Equal(decimal.RequireFromString("0.001"))).To(BeTrue())

				after, err := teos.Wallet(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(after.Balances["SOL"].Equal(decimal.RequireFromString("9.45"))).To(BeTrue())
			})

			It("confirms the transaction on its first lookup and stays stable", func() {
				tx, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.RequireFromString("3"),
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).NotTo(HaveOccurred())

				first, err := teos.Transaction(ctx, tx.Hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(first.Status).To(Equal(ledger.StatusCompleted))

				second, err := teos.Transaction(ctx, tx.Hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(Equal(first))
			})
		})

		When("the wallet does not exist", func() {
			It("returns wallet not found", func() {
				_, err := teos.Send(ctx, "missing", core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.RequireFromString("1"),
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).To(MatchError(core.ErrWalletNotFound))
			})
		})

		When("the amount is not positive", func() {
			It("rejects the transfer without side effects", func() {
				_, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.Zero,
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).To(MatchError(core.ErrInvalidAmount))

				history, err := teos.History(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(history).To(BeEmpty())
			})
		})

		When("the recipient address fails the shape check", func() {
			It("rejects with invalid address, no debit, no transaction", func() {
				_, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: "short12345",
					Amount:    decimal.RequireFromString("3"),
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).To(MatchError(core.ErrInvalidAddress))

				after, err := teos.Wallet(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(after.Balances["SOL"].Equal(decimal.RequireFromString("12.45"))).To(BeTrue())

				history, err := teos.History(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(history).To(BeEmpty())
			})
		})

		When("the asset is not held", func() {
			It("returns unsupported asset", func() {
				_, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.RequireFromString("1"),
					Symbol:    "DOGE",
					Network:   chain.Solana,
				})
				Expect(err).To(MatchError(core.ErrUnsupportedAsset))
			})
		})

		When("the balance is insufficient", func() {
			It("rejects, leaves the balance unchanged and records nothing", func() {
				_, err := teos.Send(ctx, created.ID, core.SendMessage{
					ToAddress: validSolanaAddr,
					Amount:    decimal.RequireFromString("100"),
					Symbol:    "SOL",
					Network:   chain.Solana,
				})
				Expect(err).To(MatchError(core.ErrInsufficientBalance))

				after, err := teos.Wallet(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(after.Balances["SOL"].Equal(decimal.RequireFromString("12.45"))).To(BeTrue())

				history, err := teos.History(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(history).To(BeEmpty())
			})
		})
	})

	Describe("Balance", func() {
		It("prices every held asset and totals the wallet value", func() {
			created, err := teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())

			report, err := teos.Balance(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(report.WalletID).To(Equal(created.ID))
			Expect(report.Balances).To(HaveLen(4))

			prices := market.NewFeed().Prices()
			expectedTotal := decimal.Zero
			for symbol, balance := range created.Balances {
				expectedTotal = expectedTotal.Add(balance.Mul(prices[symbol]))
			}
			Expect(report.TotalValue.Equal(expectedTotal)).To(BeTrue())

			for _, row := range report.Balances {
				Expect(row.Value.Equal(row.Balance.Mul(row.Price))).To(BeTrue(), row.Symbol)
			}
		})

		It("returns wallet not found for an unknown id", func() {
			_, err := teos.Balance(ctx, "missing")
			Expect(err).To(MatchError(core.ErrWalletNotFound))
		})
	})

	Describe("History", func() {
		It("lists transfers where the wallet is sender or recipient", func() {
			sender, err := teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())
			recipient, err := teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())

			tx, err := teos.Send(ctx, sender.ID, core.SendMessage{
				ToAddress: recipient.Address,
				Amount:    decimal.RequireFromString("1"),
				Symbol:    "SOL",
				Network:   chain.Solana,
			})
			Expect(err).NotTo(HaveOccurred())

			senderHistory, err := teos.History(ctx, sender.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(senderHistory).To(HaveLen(1))
			Expect(senderHistory[0].Hash).To(Equal(tx.Hash))

			recipientHistory, err := teos.History(ctx, recipient.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recipientHistory).To(HaveLen(1))
			Expect(recipientHistory[0].Hash).To(Equal(tx.Hash))
		})
	})

	Describe("Receive", func() {
		It("returns the wallet's address and QR location", func() {
			created, err := teos.CreateWallet(ctx, chain.Ethereum, "custodial")
			Expect(err).NotTo(HaveOccurred())

			info, err := teos.Receive(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Address).To(Equal(created.Address))
			Expect(info.Network).To(Equal(chain.Ethereum))
			Expect(info.QRCodeURL).To(Equal("/api/qr/" + created.Address))
		})
	})

	Describe("Rewards and NFTCollection", func() {
		It("requires an existing wallet", func() {
			_, err := teos.Rewards(ctx, "missing")
			Expect(err).To(MatchError(core.ErrWalletNotFound))

			_, err = teos.NFTCollection(ctx, "missing")
			Expect(err).To(MatchError(core.ErrWalletNotFound))
		})

		It("serves the static demo data for an existing wallet", func() {
			created, err := teos.CreateWallet(ctx, chain.Solana, "mobile")
			Expect(err).NotTo(HaveOccurred())

			rewards, err := teos.Rewards(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rewards.Tier).To(Equal("Pharaoh"))

			nfts, err := teos.NFTCollection(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(nfts).To(HaveLen(2))
		})
	})
})
