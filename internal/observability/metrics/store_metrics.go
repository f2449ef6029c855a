package metrics

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/sitesapi/pkg/db"
	"gorm.io/gorm"
)

const (
	StoreReasonDeadlineExceeded     = "deadline_exceeded"
	StoreReasonCanceled             = "canceled"
	StoreReasonLockTimeout          = "db_lock_timeout"
	StoreReasonSerializationFailure = "serialization_failure"
	StoreReasonConnection           = "connection"
	StoreReasonInvalidTransaction   = "invalid_transaction"
	StoreReasonUnknown              = "unknown"
)

const (
	StoreOperationFindByID    = "find_by_id"
	StoreOperationList        = "list"
	StoreOperationListByState = "list_by_state"
)

// StoreMetrics counts store calls and their failures by low-cardinality reason.
type StoreMetrics struct {
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewStoreMetrics registers the store collectors on the default registerer.
func NewStoreMetrics(cfg Config) *StoreMetrics {
	return newStoreMetrics(prometheus.DefaultRegisterer, cfg)
}

func newStoreMetrics(registerer prometheus.Registerer, cfg Config) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	constLabels := serviceLabels(cfg)

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "sites_store_calls_total",
		Help:        "Site store queries by operation.",
		ConstLabels: constLabels,
	}, []string{"operation"})
	storeErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "sites_store_errors_total",
		Help:        "Site store failures by operation and reason.",
		ConstLabels: constLabels,
	}, []string{"operation", "reason"})

	registerer.MustRegister(calls, storeErrors)

	return &StoreMetrics{calls: calls, errors: storeErrors}
}

// Observe records a store call and, when err is set, its classified failure.
func (m *StoreMetrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	operation = strings.TrimSpace(operation)
	m.calls.WithLabelValues(operation).Inc()
	if err != nil {
		m.errors.WithLabelValues(operation, ClassifyStoreError(err)).Inc()
	}
}

// ClassifyStoreError maps store errors to low-cardinality reasons.
func ClassifyStoreError(err error) string {
	switch {
	case err == nil:
		return StoreReasonUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return StoreReasonDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return StoreReasonCanceled
	case db.IsLockTimeout(err):
		return StoreReasonLockTimeout
	case db.IsSerializationFailure(err):
		return StoreReasonSerializationFailure
	case db.IsConnectionErr(err):
		return StoreReasonConnection
	case errors.Is(err, gorm.ErrInvalidTransaction), errors.Is(err, gorm.ErrInvalidDB):
		return StoreReasonInvalidTransaction
	default:
		return StoreReasonUnknown
	}
}
