package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("body"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_SizeAccumulatesAcrossWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.Write([]byte("defg"))

	assert.Equal(t, 7, w.size)
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_PassesThrough(t *testing.T) {
	h := newMiddlewareHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("done"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
