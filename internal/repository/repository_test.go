package repository_test

import (
	"context"
	"eoatracker/internal/db"
	"eoatracker/internal/repository"
	"eoatracker/internal/repository/fake"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LedgerRepository", func() {
	var (
		repo        *repository.LedgerRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewLedgerRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the three ledger tables", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
			models := fakeStorage.MigrateModelsArgsForCall(0)
			Expect(models).To(HaveLen(3))
			Expect(models[0]).To(BeAssignableToTypeOf(&repository.Account{}))
			Expect(models[1]).To(BeAssignableToTypeOf(&repository.Chain{}))
			Expect(models[2]).To(BeAssignableToTypeOf(&repository.Transaction{}))
		})

		It("should wrap migration errors", func() {
			fakeStorage.MigrateModelsReturns(fakeErr)
			Expect(repo.Migrate()).To(MatchError("migrate table(s): fake error"))
		})
	})

	Describe("UpsertAccount", func() {
		var (
			address string
			account repository.Account
			err     error
		)

		BeforeEach(func() {
			address = "0x00000000000000000000000000000000000000aa"
		})

		JustBeforeEach(func() {
			account, err = repo.UpsertAccount(ctx, address)
		})

		When("the address is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(true, nil)
			})

			It("should insert keyed on address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account.Address).To(Equal(address))

				Expect(fakeStorage.InsertIgnoreCallCount()).To(Equal(1))
				_, record, columns := fakeStorage.InsertIgnoreArgsForCall(0)
				Expect(record).To(Equal(&repository.Account{Address: address}))
				Expect(columns).To(Equal([]string{"address"}))
			})
		})

		When("the address already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(false, nil)
			})

			It("should succeed without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account.Address).To(Equal(address))
			})
		})

		When("the address is empty", func() {
			BeforeEach(func() {
				address = ""
			})

			It("should refuse to persist it", func() {
				Expect(err).To(MatchError(repository.ErrEmptyAddress))
				Expect(fakeStorage.InsertIgnoreCallCount()).To(Equal(0))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("InsertTransaction", func() {
		var (
			tx     repository.Transaction
			stored repository.Transaction
			err    error
		)

		BeforeEach(func() {
			tx = repository.Transaction{
				Hash:        "0xabc",
				Block:       100,
				FromAddress: "0x01",
				ToAddress:   "0x02",
				ChainID:     1,
			}
		})

		JustBeforeEach(func() {
			stored, err = repo.InsertTransaction(ctx, tx)
		})

		When("the hash is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(true, nil)
			})

			It("should return the stored transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stored).To(Equal(tx))

				_, record, columns := fakeStorage.InsertIgnoreArgsForCall(0)
				Expect(record).To(Equal(&tx))
				Expect(columns).To(Equal([]string{"hash"}))
			})
		})

		When("the hash was stored before", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(false, nil)
			})

			It("should return ErrTransactionExists", func() {
				Expect(err).To(MatchError(repository.ErrTransactionExists))
				Expect(stored).To(BeZero())
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(false, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring(`insert transaction "0xabc"`))
			})
		})
	})

	Describe("UpsertChain", func() {
		It("should update descriptive columns on id conflict", func() {
			chain := repository.Chain{ID: 1, Name: "Ethereum", RPC: "https://eth.example.org", Blocktime: 12}
			Expect(repo.UpsertChain(ctx, chain)).To(Succeed())

			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
			_, record, conflict, update := fakeStorage.UpsertArgsForCall(0)
			Expect(record).To(Equal(&chain))
			Expect(conflict).To(Equal([]string{"id"}))
			Expect(update).To(ConsistOf("name", "rpc", "blocktime"))
		})

		It("should wrap errors", func() {
			fakeStorage.UpsertReturns(fakeErr)
			err := repo.UpsertChain(ctx, repository.Chain{ID: 7})
			Expect(err).To(MatchError("upsert chain 7: fake error"))
		})
	})

	Describe("GetChain", func() {
		When("the chain exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					chain := dest.(*repository.Chain)
					*chain = repository.Chain{ID: 1, Name: "Ethereum"}
					return nil
				}
			})

			It("should return it", func() {
				chain, err := repo.GetChain(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(chain.Name).To(Equal("Ethereum"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal(int64(1)))
			})
		})

		When("the chain is unknown", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrChainNotFound", func() {
				_, err := repo.GetChain(ctx, 9)
				Expect(err).To(MatchError(repository.ErrChainNotFound))
			})
		})
	})

	Describe("ListTransactionsBySenderAndChain", func() {
		var (
			transactions []repository.Transaction
			err          error
		)

		JustBeforeEach(func() {
			transactions, err = repo.ListTransactionsBySenderAndChain(ctx, "0x01", 137)
		})

		When("the sender has transactions", func() {
			BeforeEach(func() {
				fakeStorage.FindStub = func(ctx context.Context, dest any, filter db.Filter) error {
					txs := dest.(*[]repository.Transaction)
					*txs = []repository.Transaction{{Hash: "0x1", Block: 5}, {Hash: "0x2", Block: 9}}
					return nil
				}
			})

			It("should filter by sender and chain in block order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))

				_, _, filter := fakeStorage.FindArgsForCall(0)
				Expect(filter.Where).To(Equal(map[string]any{"from_address": "0x01", "chain_id": int64(137)}))
				Expect(filter.OrderBy).To(Equal("block_number ASC, hash ASC"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.FindReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(transactions).To(BeNil())
			})
		})
	})

	Describe("ListAccounts and ListChains", func() {
		It("should list accounts ordered by address", func() {
			fakeStorage.FindStub = func(ctx context.Context, dest any, filter db.Filter) error {
				*dest.(*[]repository.Account) = []repository.Account{{Address: "0x01"}}
				return nil
			}

			accounts, err := repo.ListAccounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(Equal([]repository.Account{{Address: "0x01"}}))
			_, _, filter := fakeStorage.FindArgsForCall(0)
			Expect(filter.OrderBy).To(Equal("address ASC"))
		})

		It("should list chains ordered by id", func() {
			chains, err := repo.ListChains(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(chains).To(BeEmpty())
			_, _, filter := fakeStorage.FindArgsForCall(0)
			Expect(filter.OrderBy).To(Equal("id ASC"))
		})
	})

	Describe("AggregateTopRecipients", func() {
		It("should group by recipient within the chain", func() {
			fakeStorage.GroupCountStub = func(ctx context.Context, model any, column string, filter db.Filter, dest any) error {
				*dest.(*[]repository.RecipientCount) = []repository.RecipientCount{{Address: "0xc0", Count: 15}}
				return nil
			}

			counts, err := repo.AggregateTopRecipients(ctx, 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal([]repository.RecipientCount{{Address: "0xc0", Count: 15}}))

			_, model, column, filter, _ := fakeStorage.GroupCountArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
			Expect(column).To(Equal("to_address"))
			Expect(filter.Where).To(Equal(map[string]any{"chain_id": int64(1)}))
			Expect(filter.Limit).To(Equal(20))
		})

		It("should wrap errors", func() {
			fakeStorage.GroupCountReturns(fakeErr)
			_, err := repo.AggregateTopRecipients(ctx, 1, 20)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
