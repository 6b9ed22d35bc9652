package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"eoatracker/internal/core"

	"github.com/urfave/cli/v3"
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:        "report",
		Usage:       "Prints the batch statistics and most used contracts of every stored chain.",
		Description: "Batches every account's stored transactions per chain and writes the report to stdout as JSON.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "window",
				Usage: "batching time window, overrides ANALYSIS_WINDOW",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the JSON output",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := setup()
			if err != nil {
				return err
			}
			if window := c.Duration("window"); window > 0 {
				a.config.AnalysisWindow = window
			}

			reports, err := a.report(ctx)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(c.Root().Writer)
			if c.Bool("pretty") {
				encoder.SetIndent("", "  ")
			}
			if err := encoder.Encode(map[string][]core.ChainReport{"reports": reports}); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			return nil
		},
	}
}

func (a *app) report(ctx context.Context) ([]core.ChainReport, error) {
	chains, err := a.ledger.ListChains(ctx)
	if err != nil {
		a.logs.Errorw("failed to list chains", "error", err)
		return nil, err
	}

	readers := make(map[int64]core.CodeReader, len(chains))
	for _, chain := range chains {
		client, closeClient, err := a.dial(ctx, chain)
		if err != nil {
			a.logs.Errorw("failed to connect to chain, contracts will not be ranked", "error", err, "chain_id", chain.ID)
			continue
		}
		defer closeClient()
		readers[chain.ID] = client
	}

	analyzer := core.NewAnalyzer(a.logs, a.ledger, readers, a.config.AnalysisWindow, a.config.TopContracts)
	reports, err := analyzer.Report(ctx)
	if err != nil {
		a.logs.Errorw("failed to build report", "error", err)
		return nil, err
	}

	for _, report := range reports {
		a.logs.Infow("chain report",
			"chain_id", report.ChainID,
			"chain", report.ChainName,
			"block_offset", report.BlockOffset,
			"accounts", report.AccountsWithBatches,
			"average_batches", report.AverageBatchesPerAccount,
			"no_data", report.NoData,
			"contracts", len(report.MostUsedContracts))
	}

	return reports, nil
}
