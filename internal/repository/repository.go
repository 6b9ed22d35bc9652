package repository

import (
	"context"
	"eoatracker/internal/db"
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress      = errors.New("empty account address")
	ErrTransactionExists = errors.New("transaction already stored")
	ErrChainNotFound     = errors.New("chain not found")
)

// LedgerRepository persists accounts, chains and transactions.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) Migrate() error {
	err := r.db.MigrateModels(&Account{}, &Chain{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// UpsertAccount makes sure a row exists for address. An existing row is left
// untouched.
func (r *LedgerRepository) UpsertAccount(ctx context.Context, address string) (Account, error) {
	if address == "" {
		return Account{}, ErrEmptyAddress
	}

	account := Account{Address: address}
	if _, err := r.db.InsertIgnore(ctx, &account, "address"); err != nil {
		return Account{}, fmt.Errorf("upsert account %q: %w", address, err)
	}

	return account, nil
}

// InsertTransaction stores tx once. A second insert of the same hash returns
// ErrTransactionExists and writes nothing.
func (r *LedgerRepository) InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	inserted, err := r.db.InsertIgnore(ctx, &tx, "hash")
	if err != nil {
		return Transaction{}, fmt.Errorf("insert transaction %q: %w", tx.Hash, err)
	}

	if !inserted {
		return Transaction{}, ErrTransactionExists
	}

	return tx, nil
}

func (r *LedgerRepository) UpsertChain(ctx context.Context, chain Chain) error {
	err := r.db.Upsert(ctx, &chain, []string{"id"}, []string{"name", "rpc", "blocktime"})
	if err != nil {
		return fmt.Errorf("upsert chain %d: %w", chain.ID, err)
	}

	return nil
}

func (r *LedgerRepository) GetChain(ctx context.Context, chainID int64) (Chain, error) {
	var chain Chain

	err := r.db.GetOneBy(ctx, "id", chainID, &chain)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Chain{}, ErrChainNotFound
		}
		return Chain{}, fmt.Errorf("get chain by id: %w", err)
	}

	return chain, nil
}

func (r *LedgerRepository) ListAccounts(ctx context.Context) ([]Account, error) {
	accounts := []Account{}
	err := r.db.Find(ctx, &accounts, db.Filter{OrderBy: "address ASC"})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

func (r *LedgerRepository) ListChains(ctx context.Context) ([]Chain, error) {
	chains := []Chain{}
	err := r.db.Find(ctx, &chains, db.Filter{OrderBy: "id ASC"})
	if err != nil {
		return nil, fmt.Errorf("list chains: %w", err)
	}

	return chains, nil
}

// ListTransactionsBySenderAndChain returns the outgoing transactions of
// address on one chain in ascending block order. Hash breaks ties so the
// order is stable across runs.
func (r *LedgerRepository) ListTransactionsBySenderAndChain(ctx context.Context, address string, chainID int64) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.Find(ctx, &transactions, db.Filter{
		Where: map[string]any{
			"from_address": address,
			"chain_id":     chainID,
		},
		OrderBy: "block_number ASC, hash ASC",
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions of %q on chain %d: %w", address, chainID, err)
	}

	return transactions, nil
}

// AggregateTopRecipients counts transactions per recipient on a chain and
// returns the limit busiest recipients.
func (r *LedgerRepository) AggregateTopRecipients(ctx context.Context, chainID int64, limit int) ([]RecipientCount, error) {
	counts := []RecipientCount{}
	err := r.db.GroupCount(ctx, &Transaction{}, "to_address", db.Filter{
		Where: map[string]any{"chain_id": chainID},
		Limit: limit,
	}, &counts)
	if err != nil {
		return nil, fmt.Errorf("aggregate recipients on chain %d: %w", chainID, err)
	}

	return counts, nil
}
