package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRequestLogger(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zaptest.NewLogger(t), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	require.NotEmpty(t, requestID)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "request id is a uuid")

	_, routes, _ := metrics.Snapshot()
	require.Len(t, routes, 1)
	assert.Equal(t, "GET /ping", routes[0].Route)
	assert.Equal(t, int64(1), routes[0].Count)
}

func TestRequestLogger_UniqueIDs(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger(zaptest.NewLogger(t), NewMetrics()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.NoError(t, err)
		resp.Body.Close()
		seen[resp.Header.Get("X-Request-Id")] = true
	}
	assert.Len(t, seen, 3)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, time.Millisecond)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	uptime, routes, codes := m.Snapshot()
	assert.Zero(t, uptime)
	assert.Nil(t, routes)
	assert.Nil(t, codes)
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/orders", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/orders", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/orders", "GET", 404, 5*time.Millisecond)
	m.RecordRequest("/products", "POST", 201, 2*time.Millisecond)
	m.RecordError("/orders", "GET", "NOT_FOUND")

	_, routes, codes := m.Snapshot()
	require.Len(t, routes, 2)

	// Sorted by route key.
	orders := routes[0]
	assert.Equal(t, "GET /orders", orders.Route)
	assert.Equal(t, int64(3), orders.Count)
	assert.Equal(t, int64(1), orders.Errors)
	assert.Equal(t, int64(15), orders.AvgMillis)
	assert.Equal(t, int64(30), orders.SlowestMillis)

	products := routes[1]
	assert.Equal(t, "POST /products", products.Route)
	assert.Equal(t, int64(1), products.Count)
	assert.Zero(t, products.Errors)

	assert.Equal(t, int64(1), codes["NOT_FOUND"])
}
