// Package metrics registers the Prometheus collectors for the LearnLedger API.
//
// Collectors are registered on the default registry at package init and
// exposed by cmd/server on /metrics.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/forgo/learnledger/api/internal/ledger"
)

const namespace = "learnledger"

var (
	// StakesTotal counts successful stake actions
	StakesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "stakes_total",
		Help:      "Total successful stake actions",
	})

	// StakedAmount sums the EDU moved from balance to staked
	StakedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "staked_edu_total",
		Help:      "Total EDU staked",
	})

	// VotesTotal sums vote weight cast per sector.
	// Labels: sector
	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "votes_total",
		Help:      "Total vote weight cast by sector",
	}, []string{"sector"})

	// RewardsDistributed counts reward distributions
	RewardsDistributed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "reward_distributions_total",
		Help:      "Total reward distributions",
	})

	// Rejections counts ledger operations refused by a guard.
	// Labels: operation (stake, vote), reason
	Rejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "rejections_total",
		Help:      "Total ledger operations rejected by a guard",
	}, []string{"operation", "reason"})

	// ReadingSeconds counts reading ticks
	ReadingSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reading",
		Name:      "seconds_total",
		Help:      "Total seconds spent with a paper open",
	})

	// ReadingSessions counts opened reading sessions
	ReadingSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reading",
		Name:      "sessions_total",
		Help:      "Total reading sessions opened",
	})

	// HTTPRequests counts served requests.
	// Labels: method, status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPDuration measures request latency.
	// Labels: method
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// RecordRejection increments Rejections with a reason derived from err
func RecordRejection(operation string, err error) {
	Rejections.WithLabelValues(operation, RejectionReason(err)).Inc()
}

// RejectionReason maps a ledger guard error to a metric label
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ledger.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, ledger.ErrRoundCapExceeded):
		return "round_cap_exceeded"
	case errors.Is(err, ledger.ErrSectorNotFound):
		return "sector_not_found"
	}
	return "other"
}

// RecordHTTP records one served request
func RecordHTTP(method string, status int, seconds float64) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(seconds)
}
