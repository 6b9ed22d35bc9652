package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"eoatracker/internal/metrics"
	"eoatracker/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Indexer stores the transactions of every new block of one chain.
type Indexer struct {
	logs   *zap.SugaredLogger
	chain  repository.Chain
	ledger Ledger
	client ChainClient

	// bounds in-flight transaction handlers across all blocks of the chain
	sem    *semaphore.Weighted
	blocks sync.WaitGroup
}

func NewIndexer(logger *zap.SugaredLogger, chain repository.Chain, ledger Ledger, client ChainClient, maxConcurrent int64) *Indexer {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Indexer{
		logs:   logger.With("chain_id", chain.ID),
		chain:  chain,
		ledger: ledger,
		client: client,
		sem:    semaphore.NewWeighted(maxConcurrent),
	}
}

// Watch handles every new block of the chain until ctx is done or the block
// subscription fails. Blocks are handled concurrently; Watch waits for the
// blocks in flight before returning.
func (ix *Indexer) Watch(ctx context.Context) error {
	ix.logs.Infow("watching chain", "name", ix.chain.Name)

	err := ix.client.SubscribeNewBlocks(ctx, func(number uint64) {
		ix.blocks.Add(1)
		go func() {
			defer ix.blocks.Done()
			ix.HandleBlock(ctx, number)
		}()
	})
	ix.blocks.Wait()

	if err != nil {
		return fmt.Errorf("watch chain %d: %w", ix.chain.ID, err)
	}

	ix.logs.Infow("stopped watching chain", "name", ix.chain.Name)
	return nil
}

// HandleBlock stores the transactions of block number. A block the endpoint
// does not serve yet is skipped, as is a block that cannot be fetched. One
// failing transaction does not stop the others.
func (ix *Indexer) HandleBlock(ctx context.Context, number uint64) {
	start := time.Now()
	logs := ix.logs.With("block", number)

	block, err := ix.client.GetBlock(ctx, number)
	if err != nil {
		logs.Warnw("failed to fetch block, skipping", "error", err)
		metrics.ObserveBlock(ix.chain.ID, metrics.BlockFailed, 0)
		return
	}
	if block == nil {
		logs.Infow("block not available yet, skipping")
		metrics.ObserveBlock(ix.chain.ID, metrics.BlockMissing, 0)
		return
	}

	var (
		wg          sync.WaitGroup
		interrupted bool
	)
	for _, hash := range block.TransactionHashes {
		if err := ix.sem.Acquire(ctx, 1); err != nil {
			logs.Warnw("block handling interrupted", "error", err)
			interrupted = true
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer ix.sem.Release(1)

			if _, err := ix.HandleTransaction(ctx, hash); err != nil {
				logs.Errorw("failed to handle transaction", "tx_hash", hash, "error", err)
				metrics.ObserveTransaction(ix.chain.ID, metrics.TxFailed)
			}
		}()
	}
	wg.Wait()

	if interrupted {
		metrics.ObserveBlock(ix.chain.ID, metrics.BlockInterrupted, 0)
		return
	}

	metrics.ObserveBlock(ix.chain.ID, metrics.BlockProcessed, time.Since(start).Seconds())
	logs.Debugw("block handled", "transactions", len(block.TransactionHashes))
}

// HandleTransaction stores the transaction with the given hash along with
// both of its accounts. Transactions without sender, recipient or block
// are not stored, nor are ones already stored; both return nil, nil.
func (ix *Indexer) HandleTransaction(ctx context.Context, hash string) (*repository.Transaction, error) {
	tx, err := ix.client.GetTransaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	if tx == nil || tx.From == "" || tx.To == "" || tx.BlockNumber == nil {
		ix.logs.Debugw("discarding incomplete transaction", "tx_hash", hash)
		metrics.ObserveTransaction(ix.chain.ID, metrics.TxDiscarded)
		return nil, nil
	}

	if err := ix.EnsureAccount(ctx, tx.From); err != nil {
		return nil, fmt.Errorf("ensure sender: %w", err)
	}
	if err := ix.EnsureAccount(ctx, tx.To); err != nil {
		return nil, fmt.Errorf("ensure recipient: %w", err)
	}

	stored, err := ix.ledger.InsertTransaction(ctx, repository.Transaction{
		Hash:        tx.Hash,
		Block:       *tx.BlockNumber,
		FromAddress: tx.From,
		ToAddress:   tx.To,
		ChainID:     ix.chain.ID,
	})
	if errors.Is(err, repository.ErrTransactionExists) {
		ix.logs.Debugw("transaction already stored", "tx_hash", hash)
		metrics.ObserveTransaction(ix.chain.ID, metrics.TxDuplicate)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	metrics.ObserveTransaction(ix.chain.ID, metrics.TxStored)
	return &stored, nil
}

// EnsureAccount stores address unless it is already known.
func (ix *Indexer) EnsureAccount(ctx context.Context, address string) error {
	if address == "" {
		ix.logs.Errorw("refusing to store account without address")
		return repository.ErrEmptyAddress
	}

	if _, err := ix.ledger.UpsertAccount(ctx, address); err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}

	return nil
}
