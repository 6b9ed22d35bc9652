package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Block struct {
	Number            uint64
	Hash              string
	TransactionHashes []string
}

// Transaction is the sender/recipient view of a transaction. To is empty for
// contract creations and BlockNumber is nil until the transaction is mined.
type Transaction struct {
	Hash        string
	From        string
	To          string
	BlockNumber *uint64
}

// rpcBlock is eth_getBlockByNumber without transaction bodies.
type rpcBlock struct {
	Number       hexutil.Uint64 `json:"number"`
	Hash         common.Hash    `json:"hash"`
	Transactions []common.Hash  `json:"transactions"`
}

type rpcTransaction struct {
	Hash        common.Hash     `json:"hash"`
	From        *common.Address `json:"from"`
	To          *common.Address `json:"to"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
}
