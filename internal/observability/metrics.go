package observability

import (
	"sort"
	"sync"
	"time"
)

// routeStats accumulates per-route request counters and latency.
type routeStats struct {
	count   int64
	errors  int64
	total   time.Duration
	slowest time.Duration
}

// Metrics keeps in-process request counters, exposed to operators through
// the admin metrics endpoint. Latency is tracked per route so slow catalog
// or order queries stand out without an external metrics backend.
type Metrics struct {
	mu         sync.Mutex
	startedAt  time.Time
	routes     map[string]*routeStats
	errorCodes map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		startedAt:  time.Now(),
		routes:     make(map[string]*routeStats),
		errorCodes: make(map[string]int64),
	}
}

// RecordRequest accounts one completed request under its route.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.route(method + " " + path)
	stats.count++
	if status >= 400 {
		stats.errors++
	}
	stats.total += duration
	if duration > stats.slowest {
		stats.slowest = duration
	}
}

// RecordError counts a mapped error code, e.g. NOT_FOUND or CONFLICT.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCodes[code]++
}

// RouteSnapshot is one row of the metrics report.
type RouteSnapshot struct {
	Route         string `json:"route"`
	Count         int64  `json:"count"`
	Errors        int64  `json:"errors"`
	AvgMillis     int64  `json:"avgMillis"`
	SlowestMillis int64  `json:"slowestMillis"`
}

// Snapshot returns uptime, per-route stats sorted by route, and error-code
// counts, for the admin metrics endpoint.
func (m *Metrics) Snapshot() (time.Duration, []RouteSnapshot, map[string]int64) {
	if m == nil {
		return 0, nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	routes := make([]RouteSnapshot, 0, len(m.routes))
	for route, stats := range m.routes {
		snap := RouteSnapshot{
			Route:         route,
			Count:         stats.count,
			Errors:        stats.errors,
			SlowestMillis: stats.slowest.Milliseconds(),
		}
		if stats.count > 0 {
			snap.AvgMillis = (stats.total / time.Duration(stats.count)).Milliseconds()
		}
		routes = append(routes, snap)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Route < routes[j].Route })

	codes := make(map[string]int64, len(m.errorCodes))
	for code, n := range m.errorCodes {
		codes[code] = n
	}
	return time.Since(m.startedAt), routes, codes
}

func (m *Metrics) route(key string) *routeStats {
	stats, ok := m.routes[key]
	if !ok {
		stats = &routeStats{}
		m.routes[key] = stats
	}
	return stats
}
