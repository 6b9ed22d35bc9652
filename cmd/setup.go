package cmd

import (
	"context"
	"fmt"
	"time"

	"eoatracker/internal/config"
	"eoatracker/internal/db"
	"eoatracker/internal/ethereum"
	"eoatracker/internal/repository"
	"eoatracker/pkg/log"
	"eoatracker/pkg/retry"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

type app struct {
	config config.App
	logs   *zap.SugaredLogger
	ledger *repository.LedgerRepository
}

func setup() (*app, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("eoatracker", log.ParseLevel(cfg.LogLevel))

	dbConn, err := db.NewGormDB(cfg.DBDriver, cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", cfg.DBDriver)
		return nil, err
	}

	ledger := repository.NewLedgerRepository(dbConn)
	if err := ledger.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return nil, err
	}

	return &app{
		config: cfg,
		logs:   logger,
		ledger: ledger,
	}, nil
}

// dial connects to the endpoint of chain and refuses endpoints serving
// another chain. The returned close func releases the connection.
func (a *app) dial(ctx context.Context, chain repository.Chain) (*ethereum.EthService, func(), error) {
	rpcClient, err := rpc.DialContext(ctx, chain.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("dial chain %d: %w", chain.ID, err)
	}

	service := ethereum.NewEthService(ethclient.NewClient(rpcClient), rpcClient, chain.ID,
		ethereum.WithLogger(a.logs.With("chain_id", chain.ID)),
		ethereum.WithFetchTimeout(a.config.FetchTimeout),
		ethereum.WithPollInterval(time.Duration(chain.Blocktime*float64(time.Second))),
		ethereum.WithRetry(retry.New(retry.WithAttempts(a.config.FetchAttempts))),
	)

	if err := service.VerifyChainID(ctx); err != nil {
		rpcClient.Close()
		return nil, nil, fmt.Errorf("verify chain %d: %w", chain.ID, err)
	}

	return service, rpcClient.Close, nil
}
