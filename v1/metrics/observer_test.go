package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/second-state/qdrant-rest-client/v1/observability"
)

func TestPromObserverRecordsOperations(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	obs := NewPromObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "qdrant",
		Operation: "search_points",
		Duration:  25 * time.Millisecond,
		Size:      3,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "qdrant",
		Operation: "search_points",
		Duration:  10 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	success := testutil.ToFloat64(m.operationsTotal.WithLabelValues("qdrant", "search_points", "success"))
	if success != 1 {
		t.Errorf("expected 1 successful operation, got %v", success)
	}
	failed := testutil.ToFloat64(m.operationsTotal.WithLabelValues("qdrant", "search_points", "error"))
	if failed != 1 {
		t.Errorf("expected 1 failed operation, got %v", failed)
	}

	// Both calls record a duration sample, only the sized one records size.
	durations := testutil.CollectAndCount(m.operationDuration)
	if durations != 1 {
		t.Errorf("expected 1 duration series, got %d", durations)
	}
	sizes := testutil.CollectAndCount(m.operationSize)
	if sizes != 1 {
		t.Errorf("expected 1 size series, got %d", sizes)
	}
}

func TestPromObserverZeroSizeSkipsSizeMetric(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	obs := NewPromObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "qdrant",
		Operation: "health_check",
		Duration:  time.Millisecond,
	})

	if n := testutil.CollectAndCount(m.operationSize); n != 0 {
		t.Errorf("expected no size series for zero-size operations, got %d", n)
	}
}

func TestNilObserverIsInert(t *testing.T) {
	var obs *PromObserver

	// Must not panic.
	obs.ObserveOperation(observability.OperationContext{
		Component: "qdrant",
		Operation: "search_points",
	})
}

func TestNewMetricsWithoutAddressHasNoServer(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	if m.Server != nil {
		t.Error("expected no server when address is empty")
	}
	if m.Registry == nil {
		t.Error("expected a registry")
	}
}

func TestNewMetricsWithAddress(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test", Address: ":0"})
	if m.Server == nil {
		t.Fatal("expected a server when address is set")
	}
	if m.Server.Addr != ":0" {
		t.Errorf("expected addr :0, got %s", m.Server.Addr)
	}
}
