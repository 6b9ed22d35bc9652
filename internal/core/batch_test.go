package core_test

import (
	"fmt"
	"time"

	"eoatracker/internal/core"
	"eoatracker/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func txsAt(blocks ...uint64) []repository.Transaction {
	txs := make([]repository.Transaction, len(blocks))
	for i, b := range blocks {
		txs[i] = repository.Transaction{Hash: hashOf(i), Block: b}
	}
	return txs
}

func hashOf(i int) string {
	return fmt.Sprintf("0x%064x", i)
}

func windows(batches []core.Batch) [][2]uint64 {
	out := make([][2]uint64, len(batches))
	for i, b := range batches {
		out[i] = [2]uint64{b.Start, b.End}
	}
	return out
}

func blocksOf(batch core.Batch) []uint64 {
	out := make([]uint64, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		out[i] = tx.Block
	}
	return out
}

var _ = Describe("GroupByBlockOffset", func() {
	It("should open a new batch once a block leaves the window", func() {
		batches := core.GroupByBlockOffset(txsAt(100, 105, 130), 20)

		Expect(windows(batches)).To(Equal([][2]uint64{{100, 120}, {130, 150}}))
		Expect(blocksOf(batches[0])).To(Equal([]uint64{100, 105}))
		Expect(blocksOf(batches[1])).To(Equal([]uint64{130}))
	})

	It("should start windows at the first block outside existing ones", func() {
		batches := core.GroupByBlockOffset(txsAt(100, 125, 140), 20)

		Expect(windows(batches)).To(Equal([][2]uint64{{100, 120}, {125, 145}}))
		Expect(blocksOf(batches[0])).To(Equal([]uint64{100}))
		Expect(blocksOf(batches[1])).To(Equal([]uint64{125, 140}))
	})

	It("should place a transaction into the first window holding it", func() {
		batches := core.GroupByBlockOffset(txsAt(100, 125, 110), 20)

		Expect(windows(batches)).To(Equal([][2]uint64{{100, 120}, {125, 145}}))
		Expect(blocksOf(batches[0])).To(Equal([]uint64{100, 110}))
		Expect(blocksOf(batches[1])).To(Equal([]uint64{125}))
	})

	It("should keep the end of a window exclusive", func() {
		batches := core.GroupByBlockOffset(txsAt(100, 119, 120), 20)

		Expect(windows(batches)).To(Equal([][2]uint64{{100, 120}, {120, 140}}))
	})

	It("should return no batch without transactions", func() {
		Expect(core.GroupByBlockOffset(nil, 20)).To(BeEmpty())
		Expect(core.GroupByBlockOffset([]repository.Transaction{}, 20)).To(BeEmpty())
	})

	It("should treat a zero offset as one block", func() {
		batches := core.GroupByBlockOffset(txsAt(7, 7, 8), 0)

		Expect(windows(batches)).To(Equal([][2]uint64{{7, 8}, {8, 9}}))
		Expect(batches[0].Size()).To(Equal(2))
	})

	It("should be deterministic and keep every transaction inside its window", func() {
		txs := txsAt(3, 4, 9, 15, 16, 17, 30, 31, 44, 60)

		first := core.GroupByBlockOffset(txs, 7)
		second := core.GroupByBlockOffset(txs, 7)
		Expect(second).To(Equal(first))

		total := 0
		for _, batch := range first {
			Expect(batch.Transactions).NotTo(BeEmpty())
			for _, tx := range batch.Transactions {
				Expect(batch.Start).To(BeNumerically("<=", tx.Block))
				Expect(tx.Block).To(BeNumerically("<", batch.End))
			}
			total += batch.Size()
		}
		Expect(total).To(Equal(len(txs)))
	})
})

var _ = DescribeTable("BlockOffset",
	func(window time.Duration, blocktime float64, expected uint64) {
		Expect(core.BlockOffset(window, blocktime)).To(Equal(expected))
	},
	Entry("12 second blocks", 5*time.Minute, 12.0, uint64(25)),
	Entry("2 second blocks", 5*time.Minute, 2.0, uint64(150)),
	Entry("rounds down", 5*time.Minute, 7.0, uint64(42)),
	Entry("fractional block time", time.Minute, 0.25, uint64(240)),
	Entry("window shorter than a block", 5*time.Second, 12.0, uint64(1)),
	Entry("invalid block time", 5*time.Minute, 0.0, uint64(1)),
)
