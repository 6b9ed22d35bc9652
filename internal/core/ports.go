package core

import (
	"context"
	"eoatracker/internal/ethereum"
	"eoatracker/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	UpsertAccount(ctx context.Context, address string) (repository.Account, error)
	InsertTransaction(ctx context.Context, tx repository.Transaction) (repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	SubscribeNewBlocks(ctx context.Context, onBlock func(uint64)) error
	GetBlock(ctx context.Context, number uint64) (*ethereum.Block, error)
	GetTransaction(ctx context.Context, hash string) (*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name AnalysisLedger . AnalysisLedger
type AnalysisLedger interface {
	ListAccounts(ctx context.Context) ([]repository.Account, error)
	ListChains(ctx context.Context) ([]repository.Chain, error)
	GetChain(ctx context.Context, chainID int64) (repository.Chain, error)
	ListTransactionsBySenderAndChain(ctx context.Context, address string, chainID int64) ([]repository.Transaction, error)
	AggregateTopRecipients(ctx context.Context, chainID int64, limit int) ([]repository.RecipientCount, error)
}

//counterfeiter:generate -o fake -fake-name CodeReader . CodeReader
type CodeReader interface {
	GetCode(ctx context.Context, address string) ([]byte, error)
}
