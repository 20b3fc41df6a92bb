package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var recorder = tracetest.NewSpanRecorder()

func init() {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
}

func endedSpan(t *testing.T, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range recorder.Ended() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("span %q not recorded", name)
	return nil
}

func hasAttribute(span sdktrace.ReadOnlySpan, kv attribute.KeyValue) bool {
	for _, a := range span.Attributes() {
		if a == kv {
			return true
		}
	}
	return false
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/api/roadmaps/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/roadmaps/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	ok := endedSpan(t, "GET /api/roadmaps/:id")
	assert.True(t, hasAttribute(ok, attribute.Int("http.status_code", http.StatusOK)))
	assert.Equal(t, codes.Unset, ok.Status().Code)

	failed := endedSpan(t, "GET /api/fail")
	assert.Equal(t, codes.Error, failed.Status().Code)
}

func TestStoreSpan(t *testing.T) {
	_, span := StartStoreSpan(context.Background(), "persist", "roadmaps", 2)
	EndWithError(span, errors.New("disk full"))

	s := endedSpan(t, "RoadmapStore.persist")
	require.Len(t, s.Events(), 1)
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.True(t, hasAttribute(s, attribute.String("storage.key", "roadmaps")))
	assert.True(t, hasAttribute(s, attribute.Int("roadmaps.count", 2)))
}
