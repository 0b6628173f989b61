package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/pkg/ctxutil"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-1"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := decodeLogLine(t, &buf)
	assert.Equal(t, "http.request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/search", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Contains(t, line, "duration")
	assert.NotContains(t, line, "user_id")
}

func TestLogger_ServerErrorLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/entries", nil))

	line := decodeLogLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, 500, line["status"])
}

func TestLogger_IncludesUserID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	id := domain.Identity{UserID: uuid.New(), Username: "alice", Role: domain.UserRoleUser}

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/entries", nil)
	req = req.WithContext(ctxutil.WithIdentity(req.Context(), id))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := decodeLogLine(t, &buf)
	assert.Equal(t, id.UserID.String(), line["user_id"])
	assert.EqualValues(t, 201, line["status"])
}

func TestStatusWriter_FirstHeaderWins(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sw.WriteHeader(http.StatusNotFound)
	sw.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusNotFound, sw.status)
}
