package core

import (
	"math"
	"time"

	"eoatracker/internal/repository"
)

// BlockOffset is the number of blocks a window spans on a chain producing a
// block every blocktime seconds. It is never below 1.
func BlockOffset(window time.Duration, blocktime float64) uint64 {
	if blocktime <= 0 || window <= 0 {
		return 1
	}

	blocks := math.Floor(window.Seconds() / blocktime)
	if blocks < 1 {
		return 1
	}

	return uint64(blocks)
}

// GroupByBlockOffset partitions txs, sorted by block ascending, into batches
// of offset blocks. Each transaction joins the first batch, in creation
// order, whose window holds its block; otherwise it opens a new batch
// starting at its block. Windows never move once created.
func GroupByBlockOffset(txs []repository.Transaction, offset uint64) []Batch {
	if offset == 0 {
		offset = 1
	}

	var batches []Batch
	for _, tx := range txs {
		placed := false
		for i := range batches {
			if batches[i].Contains(tx.Block) {
				batches[i].Transactions = append(batches[i].Transactions, tx)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		batches = append(batches, Batch{
			Start:        tx.Block,
			End:          tx.Block + offset,
			Transactions: []repository.Transaction{tx},
		})
	}

	return batches
}
