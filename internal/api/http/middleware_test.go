package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/pos-service/internal/observability"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

func observedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs, *observability.Metrics) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), metrics, 0)
	app.Get("/orders/:id", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("order", nil)
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app, logs, metrics
}

func requestLogFor(logs *observer.ObservedLogs, path string) *observer.LoggedEntry {
	for _, entry := range logs.FilterMessage("request").All() {
		fields := entry.ContextMap()
		if fields["path"] == path {
			e := entry
			return &e
		}
	}
	return nil
}

func TestRequestLogRecordsMappedErrorStatus(t *testing.T) {
	app, logs, metrics := observedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/99", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	entry := requestLogFor(logs, "/orders/99")
	require.NotNil(t, entry, "request log line missing")
	assert.EqualValues(t, http.StatusNotFound, entry.ContextMap()["status"],
		"logged status must match the status sent to the client")

	_, routes, errorCodes := metrics.Snapshot()
	require.Len(t, routes, 1)
	assert.Equal(t, int64(1), routes[0].Errors)
	assert.Equal(t, int64(1), errorCodes["NOT_FOUND"])
}

func TestRequestLogRecordsSuccessStatus(t *testing.T) {
	app, logs, metrics := observedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := requestLogFor(logs, "/ok")
	require.NotNil(t, entry)
	assert.EqualValues(t, http.StatusOK, entry.ContextMap()["status"])

	_, routes, _ := metrics.Snapshot()
	require.Len(t, routes, 1)
	assert.Equal(t, "GET /ok", routes[0].Route)
	assert.Zero(t, routes[0].Errors)
}

func TestErrorMiddlewarePanicRecovery(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), observability.NewMetrics(), 0)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("unreachable row") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
