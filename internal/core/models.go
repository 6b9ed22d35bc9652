package core

import "eoatracker/internal/repository"

// Batch groups one account's transactions whose block lies in [Start, End).
type Batch struct {
	Start        uint64
	End          uint64
	Transactions []repository.Transaction
}

func (b Batch) Contains(block uint64) bool {
	return b.Start <= block && block < b.End
}

func (b Batch) Size() int {
	return len(b.Transactions)
}

type ContractUsage struct {
	Address string `json:"address"`
	Count   int64  `json:"count"`
}

// ChainReport summarises account activity on one chain. NoData is set when no
// account has a batch, in which case AverageBatchesPerAccount is 0.
type ChainReport struct {
	ChainID                  int64           `json:"chainId"`
	ChainName                string          `json:"chainName"`
	BlockOffset              uint64          `json:"blockOffset"`
	AccountsWithBatches      int             `json:"accountsWithBatches"`
	TotalBatches             int             `json:"totalBatches"`
	AverageBatchesPerAccount float64         `json:"averageBatchesPerAccount"`
	NoData                   bool            `json:"noData"`
	BatchSizeFrequency       map[int]int     `json:"batchSizeFrequency"`
	MostUsedContracts        []ContractUsage `json:"mostUsedContracts"`
}
