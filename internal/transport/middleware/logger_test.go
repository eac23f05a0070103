package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wahidrahimi/ragavani-backend/pkg/ctxutil"
)

func TestLogger_CapturesStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodPost, "/ragas", nil)
	req = req.WithContext(ctxutil.WithRequestID(context.Background(), "req-42"))
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "status=201") {
		t.Errorf("expected log to contain status=201, got %q", out)
	}
	if !strings.Contains(out, "method=POST") {
		t.Errorf("expected log to contain method=POST, got %q", out)
	}
	if !strings.Contains(out, "path=/ragas") {
		t.Errorf("expected log to contain path=/ragas, got %q", out)
	}
	if !strings.Contains(out, "request_id=req-42") {
		t.Errorf("expected log to contain request_id=req-42, got %q", out)
	}
}

func TestLogger_ServerErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level for 5xx response, got %q", out)
	}
	if !strings.Contains(out, "status=500") {
		t.Errorf("expected log to contain status=500, got %q", out)
	}
}

func TestLogger_DefaultsToOKWhenHeaderNotWritten(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("expected implicit status 200, got %q", buf.String())
	}
}
