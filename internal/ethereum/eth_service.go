package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"eoatracker/pkg/retry"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const headBufferSize = 16

var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrChainIDMismatch = errors.New("endpoint serves another chain")
)

type Option func(*EthService)

// WithFetchTimeout bounds every single RPC attempt.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *EthService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithPollInterval sets how often the head is polled on endpoints without
// subscription support.
func WithPollInterval(d time.Duration) Option {
	return func(s *EthService) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

func WithRetry(r retry.Retry) Option {
	return func(s *EthService) {
		s.retry = r
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *EthService) {
		s.logs = logger
	}
}

// EthService is the chain client of one EVM chain.
type EthService struct {
	logs         *zap.SugaredLogger
	client       EthClient
	rpc          RPCCaller
	chainID      int64
	signer       types.Signer
	retry        retry.Retry
	fetchTimeout time.Duration
	pollInterval time.Duration
}

// NewEthService serves chainID through ethClient. Calls whose payload
// go-ethereum cannot decode, like blocks and transactions of custom
// transaction types, go through rpcCaller instead.
func NewEthService(ethClient EthClient, rpcCaller RPCCaller, chainID int64, opts ...Option) *EthService {
	s := &EthService{
		logs:         zap.NewNop().Sugar(),
		client:       ethClient,
		rpc:          rpcCaller,
		chainID:      chainID,
		signer:       types.LatestSignerForChainID(big.NewInt(chainID)),
		retry:        retry.New(),
		fetchTimeout: 15 * time.Second,
		pollInterval: 12 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SubscribeNewBlocks calls onBlock with the number of every new head until
// ctx is done. Endpoints that cannot push notifications are polled instead.
// A nil error means ctx was cancelled.
func (s *EthService) SubscribeNewBlocks(ctx context.Context, onBlock func(uint64)) error {
	heads := make(chan *types.Header, headBufferSize)

	sub, err := s.client.SubscribeNewHead(ctx, heads)
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		s.logs.Infow("endpoint does not support subscriptions, polling for new blocks",
			"interval", s.pollInterval.String())
		return s.pollNewBlocks(ctx, onBlock)
	}
	if err != nil {
		return fmt.Errorf("subscribe new heads: %w", err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sub.Err():
			if err == nil {
				return nil
			}
			return fmt.Errorf("new heads subscription: %w", err)
		case head := <-heads:
			if head == nil || head.Number == nil {
				continue
			}
			onBlock(head.Number.Uint64())
		}
	}
}

func (s *EthService) pollNewBlocks(ctx context.Context, onBlock func(uint64)) error {
	latest, err := s.blockNumber(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("poll block number: %w", err)
	}
	onBlock(latest)
	last := latest

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		latest, err := s.blockNumber(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logs.Warnw("failed to poll block number", "error", err)
			continue
		}

		for n := last + 1; n <= latest; n++ {
			onBlock(n)
		}
		if latest > last {
			last = latest
		}
	}
}

// GetBlock returns nil without error when the endpoint does not know the
// block yet. Only transaction hashes are requested, so blocks holding
// transaction types go-ethereum cannot decode are read as well.
func (s *EthService) GetBlock(ctx context.Context, number uint64) (*Block, error) {
	var block *rpcBlock
	err := s.call(ctx, func(ctx context.Context) error {
		var b *rpcBlock
		if err := s.rpc.CallContext(ctx, &b, "eth_getBlockByNumber", hexutil.EncodeUint64(number), false); err != nil {
			return permanentIfMalformed(err)
		}
		block = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching block %d: %w", number, err)
	}

	if block == nil {
		return nil, nil
	}

	hashes := make([]string, 0, len(block.Transactions))
	for _, hash := range block.Transactions {
		hashes = append(hashes, hash.Hex())
	}

	return &Block{
		Number:            uint64(block.Number),
		Hash:              block.Hash.Hex(),
		TransactionHashes: hashes,
	}, nil
}

// GetTransaction resolves sender, recipient and inclusion block of a
// transaction. Fields the endpoint cannot provide yet are left empty.
func (s *EthService) GetTransaction(ctx context.Context, hash string) (*Transaction, error) {
	txHash := common.HexToHash(hash)

	var (
		tx      *types.Transaction
		pending bool
	)
	err := s.call(ctx, func(ctx context.Context) error {
		t, isPending, err := s.client.TransactionByHash(ctx, txHash)
		if errors.Is(err, geth.NotFound) {
			return nil
		}
		if err != nil {
			return permanentIfMalformed(err)
		}
		tx, pending = t, isPending
		return nil
	})
	if errors.Is(err, types.ErrTxTypeNotSupported) {
		return s.getRawTransaction(ctx, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %q: %w", hash, err)
	}

	if tx == nil {
		return &Transaction{Hash: hash}, nil
	}

	from, err := types.Sender(s.signer, tx)
	if err != nil {
		return nil, fmt.Errorf("recover sender of %q: %w", hash, err)
	}

	result := &Transaction{
		Hash: tx.Hash().Hex(),
		From: from.Hex(),
	}
	if tx.To() != nil {
		result.To = tx.To().Hex()
	}

	if pending {
		return result, nil
	}

	var receipt *types.Receipt
	err = s.call(ctx, func(ctx context.Context) error {
		r, err := s.client.TransactionReceipt(ctx, txHash)
		if errors.Is(err, geth.NotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching receipt %q: %w", hash, err)
	}

	if receipt != nil && receipt.BlockNumber != nil {
		blockNumber := receipt.BlockNumber.Uint64()
		result.BlockNumber = &blockNumber
	}

	return result, nil
}

// getRawTransaction reads sender, recipient and block of a transaction
// straight from the JSON-RPC response. Custom transaction types carry their
// sender there.
func (s *EthService) getRawTransaction(ctx context.Context, hash string) (*Transaction, error) {
	var raw *rpcTransaction
	err := s.call(ctx, func(ctx context.Context) error {
		var t *rpcTransaction
		if err := s.rpc.CallContext(ctx, &t, "eth_getTransactionByHash", common.HexToHash(hash)); err != nil {
			return permanentIfMalformed(err)
		}
		raw = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching raw transaction %q: %w", hash, err)
	}

	result := &Transaction{Hash: hash}
	if raw == nil {
		return result, nil
	}

	result.Hash = raw.Hash.Hex()
	if raw.From != nil {
		result.From = raw.From.Hex()
	}
	if raw.To != nil {
		result.To = raw.To.Hex()
	}
	if raw.BlockNumber != nil {
		blockNumber := uint64(*raw.BlockNumber)
		result.BlockNumber = &blockNumber
	}

	return result, nil
}

// VerifyChainID fails with ErrChainIDMismatch when the endpoint serves
// another chain than the one transactions are signed for.
func (s *EthService) VerifyChainID(ctx context.Context) error {
	var served *big.Int
	err := s.call(ctx, func(ctx context.Context) error {
		id, err := s.client.ChainID(ctx)
		if err != nil {
			return err
		}
		served = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetching chain id: %w", err)
	}

	if served == nil || served.Cmp(big.NewInt(s.chainID)) != 0 {
		return fmt.Errorf("%w: got %v, want %d", ErrChainIDMismatch, served, s.chainID)
	}

	return nil
}

// GetCode returns the code deployed at address at the latest block. Plain
// accounts have none.
func (s *EthService) GetCode(ctx context.Context, address string) ([]byte, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	var code []byte
	err := s.call(ctx, func(ctx context.Context) error {
		c, err := s.client.CodeAt(ctx, common.HexToAddress(address), nil)
		if err != nil {
			return err
		}
		code = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching code at %q: %w", address, err)
	}

	return code, nil
}

func (s *EthService) blockNumber(ctx context.Context) (uint64, error) {
	var number uint64
	err := s.call(ctx, func(ctx context.Context) error {
		n, err := s.client.BlockNumber(ctx)
		if err != nil {
			return err
		}
		number = n
		return nil
	})
	return number, err
}

// call runs fn under the per-fetch timeout and retries transient failures.
func (s *EthService) call(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.retry.Execute(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		return fn(callCtx)
	})
}

// permanentIfMalformed stops retries of responses that will never decode.
func permanentIfMalformed(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, types.ErrTxTypeNotSupported) {
		return retry.Permanent(err)
	}
	return err
}
