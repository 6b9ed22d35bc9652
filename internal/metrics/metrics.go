// Package metrics holds the Prometheus collectors of the tracker. They are
// registered with the default registry and served on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Block outcomes.
const (
	BlockProcessed = "processed"
	BlockMissing   = "missing"
	BlockFailed    = "failed"

	// BlockInterrupted counts blocks left unfinished because the watcher
	// stopped.
	BlockInterrupted = "interrupted"
)

// Transaction outcomes.
const (
	TxStored    = "stored"
	TxDuplicate = "duplicate"
	TxDiscarded = "discarded"
	TxFailed    = "failed"
)

var (
	blocksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "eoatracker_blocks_total", Help: "Blocks handled by outcome"},
		[]string{"chain", "status"},
	)
	transactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "eoatracker_transactions_total", Help: "Transactions handled by outcome"},
		[]string{"chain", "status"},
	)
	blockDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "eoatracker_block_duration_seconds", Help: "Block handling latency", Buckets: prometheus.DefBuckets},
		[]string{"chain"},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "Request latency", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(blocksTotal, transactionsTotal, blockDuration, httpRequestsTotal, httpRequestDuration)
}

func ObserveBlock(chainID int64, status string, seconds float64) {
	chain := strconv.FormatInt(chainID, 10)
	blocksTotal.WithLabelValues(chain, status).Inc()
	if status == BlockProcessed {
		blockDuration.WithLabelValues(chain).Observe(seconds)
	}
}

func ObserveTransaction(chainID int64, status string) {
	transactionsTotal.WithLabelValues(strconv.FormatInt(chainID, 10), status).Inc()
}

func ObserveRequest(method, path string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}
