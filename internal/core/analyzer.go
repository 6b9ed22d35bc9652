package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eoatracker/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const codeLookupLimit = 4

var (
	ErrChainNotFound = errors.New("chain not found")
	ErrNoChainClient = errors.New("no client for chain")
)

// Analyzer batches the stored activity of every account and summarises it
// per chain.
type Analyzer struct {
	logs    *zap.SugaredLogger
	ledger  AnalysisLedger
	clients map[int64]CodeReader
	window  time.Duration
	topN    int
}

func NewAnalyzer(logger *zap.SugaredLogger, ledger AnalysisLedger, clients map[int64]CodeReader, window time.Duration, topN int) *Analyzer {
	return &Analyzer{
		logs:    logger,
		ledger:  ledger,
		clients: clients,
		window:  window,
		topN:    topN,
	}
}

// Report builds one ChainReport per stored chain, ordered by chain id. A
// chain whose contracts cannot be ranked keeps its batch statistics.
func (a *Analyzer) Report(ctx context.Context) ([]ChainReport, error) {
	accounts, err := a.ledger.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	chains, err := a.ledger.ListChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chains: %w", err)
	}

	reports := make([]ChainReport, 0, len(chains))
	for _, chain := range chains {
		report, err := a.batchStatistics(ctx, chain, accounts)
		if err != nil {
			return nil, fmt.Errorf("batch statistics of chain %d: %w", chain.ID, err)
		}

		contracts, err := a.MostUsedContracts(ctx, chain)
		if err != nil {
			a.logs.Errorw("failed to rank contracts", "chain_id", chain.ID, "error", err)
		} else {
			report.MostUsedContracts = contracts
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (a *Analyzer) batchStatistics(ctx context.Context, chain repository.Chain, accounts []repository.Account) (ChainReport, error) {
	offset := BlockOffset(a.window, chain.Blocktime)
	report := ChainReport{
		ChainID:            chain.ID,
		ChainName:          chain.Name,
		BlockOffset:        offset,
		BatchSizeFrequency: map[int]int{},
		MostUsedContracts:  []ContractUsage{},
	}

	for _, account := range accounts {
		txs, err := a.ledger.ListTransactionsBySenderAndChain(ctx, account.Address, chain.ID)
		if err != nil {
			return ChainReport{}, fmt.Errorf("list transactions: %w", err)
		}

		batches := GroupByBlockOffset(txs, offset)
		if len(batches) == 0 {
			continue
		}

		report.AccountsWithBatches++
		report.TotalBatches += len(batches)
		for _, batch := range batches {
			report.BatchSizeFrequency[batch.Size()]++
		}
	}

	if report.AccountsWithBatches == 0 {
		report.NoData = true
		return report, nil
	}

	report.AverageBatchesPerAccount = float64(report.TotalBatches) / float64(report.AccountsWithBatches)
	return report, nil
}

// MostUsedContracts ranks the top recipients of chain by transaction count
// and keeps the ones with deployed code.
func (a *Analyzer) MostUsedContracts(ctx context.Context, chain repository.Chain) ([]ContractUsage, error) {
	client, ok := a.clients[chain.ID]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrNoChainClient, chain.ID)
	}

	candidates, err := a.ledger.AggregateTopRecipients(ctx, chain.ID, a.topN)
	if err != nil {
		return nil, fmt.Errorf("aggregate top recipients: %w", err)
	}

	hasCode := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(codeLookupLimit)
	for i, candidate := range candidates {
		g.Go(func() error {
			code, err := client.GetCode(gctx, candidate.Address)
			if err != nil {
				return fmt.Errorf("get code at %q: %w", candidate.Address, err)
			}
			hasCode[i] = len(code) > 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contracts := make([]ContractUsage, 0, len(candidates))
	for i, candidate := range candidates {
		if !hasCode[i] {
			continue
		}
		contracts = append(contracts, ContractUsage{
			Address: candidate.Address,
			Count:   candidate.Count,
		})
	}

	return contracts, nil
}

// ChainContracts is MostUsedContracts for a chain given by id.
func (a *Analyzer) ChainContracts(ctx context.Context, chainID int64) ([]ContractUsage, error) {
	chain, err := a.ledger.GetChain(ctx, chainID)
	if errors.Is(err, repository.ErrChainNotFound) {
		return nil, ErrChainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chain: %w", err)
	}

	return a.MostUsedContracts(ctx, chain)
}
