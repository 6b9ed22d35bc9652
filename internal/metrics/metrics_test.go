package metrics_test

import (
	"eoatracker/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

func gathered(name string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	Expect(err).NotTo(HaveOccurred())

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				total += c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				total += float64(h.GetSampleCount())
			}
		}
	}
	return total
}

var _ = Describe("Metrics", func() {
	It("should count blocks and observe latency of processed ones only", func() {
		blocksBefore := gathered("eoatracker_blocks_total")
		latencyBefore := gathered("eoatracker_block_duration_seconds")

		metrics.ObserveBlock(1, metrics.BlockProcessed, 0.2)
		metrics.ObserveBlock(1, metrics.BlockMissing, 0)

		Expect(gathered("eoatracker_blocks_total")).To(Equal(blocksBefore + 2))
		Expect(gathered("eoatracker_block_duration_seconds")).To(Equal(latencyBefore + 1))
	})

	It("should not observe latency of interrupted blocks", func() {
		blocksBefore := gathered("eoatracker_blocks_total")
		latencyBefore := gathered("eoatracker_block_duration_seconds")

		metrics.ObserveBlock(1, metrics.BlockInterrupted, 0)

		Expect(gathered("eoatracker_blocks_total")).To(Equal(blocksBefore + 1))
		Expect(gathered("eoatracker_block_duration_seconds")).To(Equal(latencyBefore))
	})

	It("should count transactions per outcome", func() {
		before := gathered("eoatracker_transactions_total")

		metrics.ObserveTransaction(10, metrics.TxStored)
		metrics.ObserveTransaction(10, metrics.TxDuplicate)
		metrics.ObserveTransaction(10, metrics.TxDiscarded)

		Expect(gathered("eoatracker_transactions_total")).To(Equal(before + 3))
	})

	It("should record http requests", func() {
		requestsBefore := gathered("http_requests_total")
		latencyBefore := gathered("http_request_duration_seconds")

		metrics.ObserveRequest("GET", "/healthz", 200, 0.01)

		Expect(gathered("http_requests_total")).To(Equal(requestsBefore + 1))
		Expect(gathered("http_request_duration_seconds")).To(Equal(latencyBefore + 1))
	})
})
