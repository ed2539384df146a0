// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(traceIDHeader)
	})

	w := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(traceIDHeader))
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	w := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(w, req)

	assert.Equal(t, "trace-42", w.Header().Get(traceIDHeader))
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	req := httptest.NewRequest(http.MethodPost, "/get", strings.NewReader(`{"master_password":"hunter2"}`))
	w := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(w, req)

	line := buf.String()
	require.NotEmpty(t, line)
	assert.NotContains(t, line, "hunter2")

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(line)), &fields))
	assert.Equal(t, "/get", fields["uri"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 4, fields["size"])
	assert.NotEmpty(t, fields["trace_id"])
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}
