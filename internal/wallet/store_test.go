package wallet_test

import (
	"sync"

	"github.com/shopspring/decimal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"teoswallet/internal/chain"
	"teoswallet/internal/wallet"
)

var _ = Describe("Store", func() {
	var (
		store *wallet.Store
		seed  map[string]decimal.Decimal
	)

	BeforeEach(func() {
		store = wallet.NewStore()
		seed = map[string]decimal.Decimal{
			"SOL": decimal.RequireFromString("10"),
		}
	})

	Describe("Create", func() {
		When("the network is supported", func() {
			It("allocates a wallet with a shaped address and the seed balances", func() {
				created, err := store.Create(chain.Solana, "mobile", seed)
				Expect(err).NotTo(HaveOccurred())

				Expect(created.ID).To(HaveLen(32))
				Expect(chain.ValidateAddress(created.Address, chain.Solana)).To(BeTrue())
				Expect(created.Network).To(Equal(chain.Solana))
				Expect(created.Type).To(Equal("mobile"))
				Expect(created.CreatedAt).NotTo(BeZero())
				Expect(created.Balances["SOL"].Equal(decimal.RequireFromString("10"))).To(BeTrue())
			})

			It("does not alias the caller's seed map", func() {
				created, err := store.Create(chain.Solana, "mobile", seed)
				Expect(err).NotTo(HaveOccurred())

				seed["SOL"] = decimal.RequireFromString("999")

				got, err := store.Get(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Balances["SOL"].Equal(decimal.RequireFromString("10"))).To(BeTrue())
			})
		})

		When("the network is unsupported", func() {
			It("returns unsupported network", func() {
				_, err := store.Create(chain.Network("dogecoin"), "mobile", seed)
				Expect(err).To(MatchError(wallet.ErrUnsupportedNetwork))
			})
		})
	})

	Describe("Get", func() {
		It("returns not found for an unknown id", func() {
			_, err := store.Get("missing")
			Expect(err).To(MatchError(wallet.ErrNotFound))
		})

		It("returns a snapshot detached from the store", func() {
			created, err := store.Create(chain.Solana, "mobile", seed)
			Expect(err).NotTo(HaveOccurred())

			got, err := store.Get(created.ID)
			Expect(err).NotTo(HaveOccurred())
			got.Balances["SOL"] = decimal.Zero

			again, err := store.Get(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Balances["SOL"].Equal(decimal.RequireFromString("10"))).To(BeTrue())
		})
	})

	Describe("Debit", func() {
		var created wallet.Wallet

		BeforeEach(func() {
			var err error
			created, err = store.Create(chain.Solana, "mobile", seed)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the balance is sufficient", func() {
			It("decrements by exactly the amount and returns the snapshot", func() {
				after, err := store.Debit(created.ID, "SOL", decimal.RequireFromString("3"))
				Expect(err).NotTo(HaveOccurred())
				Expect(after.Balances["SOL"].Equal(decimal.RequireFromString("7"))).To(BeTrue())
			})

			It("allows draining the balance to exactly zero", func() {
				after, err := store.Debit(created.ID, "SOL", decimal.RequireFromString("10"))
				Expect(err).NotTo(HaveOccurred())
				Expect(after.Balances["SOL"].IsZero()).To(BeTrue())
			})
		})

		When("the wallet does not exist", func() {
			It("returns not found", func() {
				_, err := store.Debit("missing", "SOL", decimal.RequireFromString("1"))
				Expect(err).To(MatchError(wallet.ErrNotFound))
			})
		})

		When("the asset is not held", func() {
			It("returns unsupported asset and changes nothing", func() {
				_, err := store.Debit(created.ID, "DOGE", decimal.RequireFromString("1"))
				Expect(err).To(MatchError(wallet.ErrUnsupportedAsset))

				got, err := store.Get(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Balances["SOL"].Equal(decimal.RequireFromString("10"))).To(BeTrue())
			})
		})

		When("the balance is insufficient", func() {
			It("rejects the debit and leaves the balance unchanged", func() {
				_, err := store.Debit(created.ID, "SOL", decimal.RequireFromString("10.01"))
				Expect(err).To(MatchError(wallet.ErrInsufficientBalance))

				got, err := store.Get(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Balances["SOL"].Equal(decimal.RequireFromString("10"))).To(BeTrue())
			})
		})

		When("debits race on the same wallet", func() {
			It("never lets the balance go negative", func() {
				var wg sync.WaitGroup
				results := make(chan error, 15)

				for i := 0; i < 15; i++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						_, err := store.Debit(created.ID, "SOL", decimal.RequireFromString("1"))
						results <- err
					}()
				}
				wg.Wait()
				close(results)

				succeeded := 0
				for err := range results {
					if err == nil {
						succeeded++
						continue
					}
					Expect(err).To(MatchError(wallet.ErrInsufficientBalance))
				}
				Expect(succeeded).To(Equal(10))

				got, err := store.Get(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Balances["SOL"].IsZero()).To(BeTrue())
			})
		})
	})

	Describe("TotalValue", func() {
		It("sums balance times price and treats missing prices as zero", func() {
			created, err := store.Create(chain.Solana, "mobile", map[string]decimal.Decimal{
				"SOL":  decimal.RequireFromString("2"),
				"TEOS": decimal.RequireFromString("1000"),
			})
			Expect(err).NotTo(HaveOccurred())

			total, err := store.TotalValue(created.ID, map[string]decimal.Decimal{
				"SOL": decimal.RequireFromString("100"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Equal(decimal.RequireFromString("200"))).To(BeTrue())
		})

		It("returns not found for an unknown id", func() {
			_, err := store.TotalValue("missing", nil)
			Expect(err).To(MatchError(wallet.ErrNotFound))
		})
	})
})
