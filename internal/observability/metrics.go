package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu                 sync.Mutex
	requestCount       map[string]int64
	errorCount         map[string]int64
	validationFailures map[string]int64
	submissions        int64
}

// Snapshot is a point-in-time copy of every counter.
type Snapshot struct {
	Requests           map[string]int64 `json:"requests"`
	Errors             map[string]int64 `json:"errors"`
	ValidationFailures map[string]int64 `json:"validation_failures"`
	Submissions        int64            `json:"submissions"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:       make(map[string]int64),
		errorCount:         make(map[string]int64),
		validationFailures: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordValidationFailure counts one failing field by failure kind.
func (m *Metrics) RecordValidationFailure(field, kind string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures[field+"|"+kind]++
}

// RecordSubmission counts an accepted ticket.
func (m *Metrics) RecordSubmission() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Requests:           copyCounts(m.requestCount),
		Errors:             copyCounts(m.errorCount),
		ValidationFailures: copyCounts(m.validationFailures),
		Submissions:        m.submissions,
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
