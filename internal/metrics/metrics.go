// Package metrics содержит Prometheus-метрики сервиса кошелька.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tscoins"

// Metrics хранит метрики сервиса.
// Регистрация идет в собственный реестр, поэтому NewMetrics можно вызывать в тестах повторно.
type Metrics struct {
	Registry *prometheus.Registry

	httpDuration      *prometheus.HistogramVec
	notifications     *prometheus.CounterVec
	ledgerOperations  *prometheus.CounterVec
	revisionConflicts prometheus.Counter
	reconciliation    prometheus.Counter
	cooldownsSwept    prometheus.Counter
}

// NewMetrics создает реестр и регистрирует в нем все метрики
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Webhook deliveries by channel and outcome.",
			},
			[]string{"channel", "outcome"},
		),
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_operations_total",
				Help:      "Wallet operations by kind, category and outcome.",
			},
			[]string{"kind", "category", "outcome"},
		),
		revisionConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profile_revision_conflicts_total",
				Help:      "Profile writes rejected because of a concurrent update.",
			},
		),
		reconciliation: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchase_reconciliation_errors_total",
				Help:      "Purchases announced to staff whose debit was not recorded.",
			},
		),
		cooldownsSwept: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cooldowns_swept_total",
				Help:      "Expired cooldown records removed by the sweeper.",
			},
		),
	}
}

// ObserveHTTP записывает длительность HTTP-запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncNotification учитывает отправку вебхука
func (m *Metrics) IncNotification(channel, outcome string) {
	m.notifications.WithLabelValues(channel, outcome).Inc()
}

// IncLedgerOperation учитывает операцию по кошельку
func (m *Metrics) IncLedgerOperation(kind, category, outcome string) {
	m.ledgerOperations.WithLabelValues(kind, category, outcome).Inc()
}

// IncRevisionConflict учитывает отклоненную запись профиля
func (m *Metrics) IncRevisionConflict() {
	m.revisionConflicts.Inc()
}

// IncReconciliationError учитывает покупку без списания
func (m *Metrics) IncReconciliationError() {
	m.reconciliation.Inc()
}

// AddCooldownsSwept учитывает удаленные истекшие кулдауны
func (m *Metrics) AddCooldownsSwept(n int) {
	m.cooldownsSwept.Add(float64(n))
}
