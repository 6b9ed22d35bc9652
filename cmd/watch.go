package cmd

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"eoatracker/internal/core"
	"eoatracker/internal/http/handler"
	"eoatracker/internal/http/handler/middleware"
	"eoatracker/internal/http/server"
	"eoatracker/internal/registry"
	"eoatracker/internal/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Usage:       "Stores EOA transactions of every new block of the configured chains.",
		Description: "Watches every chain of the registry from its current head and serves the report API until interrupted.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "chains",
				Usage: "chain registry YAML file, overrides CHAINS_FILE",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := setup()
			if err != nil {
				return err
			}
			if path := c.String("chains"); path != "" {
				a.config.ChainsFile = path
			}
			return a.watch(ctx)
		},
	}
}

func (a *app) watch(ctx context.Context) error {
	chains, err := registry.Load(a.config.ChainsFile)
	if err != nil {
		a.logs.Errorw("failed to load chain registry", "error", err, "file", a.config.ChainsFile)
		return err
	}

	stored := make([]repository.Chain, 0, len(chains))
	for _, entry := range chains {
		chain := repository.Chain{ID: entry.ID, Name: entry.Name, RPC: entry.RPC, Blocktime: entry.Blocktime}
		if err := a.ledger.UpsertChain(ctx, chain); err != nil {
			a.logs.Errorw("failed to store chain", "error", err, "chain_id", chain.ID)
			return err
		}
		stored = append(stored, chain)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		watchers sync.WaitGroup
		readers  = make(map[int64]core.CodeReader, len(stored))
	)
	for _, chain := range stored {
		logs := a.logs.With("chain_id", chain.ID)

		client, closeClient, err := a.dial(ctx, chain)
		if err != nil {
			logs.Errorw("failed to connect to chain, not watching it", "error", err)
			continue
		}
		readers[chain.ID] = client

		indexer := core.NewIndexer(a.logs, chain, a.ledger, client, a.config.MaxConcurrentFetches)
		watchers.Add(1)
		go func() {
			defer watchers.Done()
			defer closeClient()

			if err := indexer.Watch(ctx); err != nil {
				logs.Errorw("chain watcher stopped", "error", err)
			}
		}()
	}

	analyzer := core.NewAnalyzer(a.logs, a.ledger, readers, a.config.AnalysisWindow, a.config.TopContracts)
	reportHlr := handler.NewReportHandler(a.logs, analyzer)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(a.logs).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	mux.HandleFunc(handler.GetReport, reportHlr.HandleGetReport)
	mux.HandleFunc(handler.GetContracts, reportHlr.HandleGetContracts)
	mux.HandleFunc(handler.GetHealth, reportHlr.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(a.logs, hdlr, a.config.Port)
	err = serve(ctx, srv)

	cancel()
	a.waitWatchers(&watchers)

	return err
}

func (a *app) waitWatchers(watchers *sync.WaitGroup) {
	done := make(chan struct{})
	go func() {
		watchers.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		a.logs.Warnw("chain watchers did not stop in time")
	}
}

// serve runs srv until ctx is done or the server fails.
func serve(ctx context.Context, srv *server.HTTPServer) error {
	errChan := srv.Run()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	if sdErr := srv.Shutdown(); sdErr != nil && err == nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
