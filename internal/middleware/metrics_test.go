package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Metrics(m))
	r.GET("/leases/:lease_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/leases/L1", "/leases/L2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(reg, "pm_backend_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per route template plus one for unmatched")
}
