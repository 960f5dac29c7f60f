package metrics

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Independent(t *testing.T) {
	first := NewMetrics()
	second := NewMetrics()

	first.IncRevisionConflict()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.revisionConflicts))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.revisionConflicts))
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncNotification("purchase", "success")
	m.IncNotification("purchase", "success")
	m.IncNotification("whitelist", "failure")
	m.IncLedgerOperation("credit", "bonus", "success")
	m.IncReconciliationError()
	m.AddCooldownsSwept(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("purchase", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("whitelist", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerOperations.WithLabelValues("credit", "bonus", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconciliation))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cooldownsSwept))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTP(http.MethodGet, "/api/wallet", http.StatusOK, 15*time.Millisecond)

	expected := `
# HELP tscoins_profile_revision_conflicts_total Profile writes rejected because of a concurrent update.
# TYPE tscoins_profile_revision_conflicts_total counter
tscoins_profile_revision_conflicts_total 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "tscoins_profile_revision_conflicts_total"))

	count, err := testutil.GatherAndCount(m.Registry, "tscoins_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
