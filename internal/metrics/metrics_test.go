package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/food-reels/internal/metrics"
)

func TestGinMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(metrics.GinMiddleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}

func TestToggleCounter(t *testing.T) {
	before := testutil.ToFloat64(metrics.ToggleTotal.WithLabelValues("like", "on"))
	metrics.ToggleTotal.WithLabelValues("like", "on").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ToggleTotal.WithLabelValues("like", "on")))
}
