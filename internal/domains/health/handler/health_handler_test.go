package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/internal/infrastructure/database"
)

var serverTime = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

type fakePostgres struct {
	err   error
	stats *database.PoolStats
}

func (f *fakePostgres) Now(ctx context.Context) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	return serverTime, nil
}

func (f *fakePostgres) Stats() (*database.PoolStats, error) {
	if f.stats == nil {
		return nil, errors.New("database pool is not initialized")
	}
	return f.stats, nil
}

type fakeMongo struct {
	err error
}

func (f *fakeMongo) Ping(ctx context.Context) error { return f.err }

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/status", h.Status)
	r.GET("/api/test-db", h.TestDB)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestStatus(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	h.now = func() time.Time { return serverTime }

	rec := get(setupRouter(h), "/api/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","time":"2026-10-18T09:30:00Z"}`, rec.Body.String())
}

func TestTestDB_BothConnected(t *testing.T) {
	stats := &database.PoolStats{AcquiredConns: 1, IdleConns: 2, TotalConns: 3, MaxConns: 25}
	h := NewHealthHandler(&fakePostgres{stats: stats}, &fakeMongo{})

	rec := get(setupRouter(h), "/api/test-db")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "ok",
		"postgresql": "connected",
		"mongodb": "connected",
		"timestamp": "2026-10-18T09:30:00Z",
		"pool": {"acquiredConns": 1, "idleConns": 2, "totalConns": 3, "maxConns": 25}
	}`, rec.Body.String())
}

func TestTestDB_StoresDownStillAnswers200(t *testing.T) {
	h := NewHealthHandler(
		&fakePostgres{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
		&fakeMongo{err: errors.New("server selection timeout")},
	)

	rec := get(setupRouter(h), "/api/test-db")

	require.Equal(t, http.StatusOK, rec.Code)

	var body DBTestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Contains(t, body.PostgreSQL, "error: dial tcp")
	assert.Equal(t, "error: server selection timeout", body.MongoDB)
	assert.Nil(t, body.Timestamp)
	assert.Nil(t, body.Pool)
}

func TestTestDB_PartialOutage(t *testing.T) {
	h := NewHealthHandler(&fakePostgres{}, &fakeMongo{err: errors.New("mongo client is not initialized")})

	rec := get(setupRouter(h), "/api/test-db")

	require.Equal(t, http.StatusOK, rec.Code)

	var body DBTestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "connected", body.PostgreSQL)
	require.NotNil(t, body.Timestamp)
	assert.True(t, serverTime.Equal(*body.Timestamp))
	assert.Nil(t, body.Pool)
	assert.Equal(t, "error: mongo client is not initialized", body.MongoDB)
}

func TestTestDB_NotConfigured(t *testing.T) {
	rec := get(setupRouter(NewHealthHandler(nil, nil)), "/api/test-db")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","postgresql":"not configured","mongodb":"not configured","timestamp":null}`, rec.Body.String())
}
