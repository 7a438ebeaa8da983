package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/internal/shared/response"
)

const (
	statusConnected     = "connected"
	statusNotConfigured = "not configured"
)

// PostgresChecker is satisfied by *database.PostgresDB.
type PostgresChecker interface {
	Now(ctx context.Context) (time.Time, error)
	Stats() (*database.PoolStats, error)
}

// MongoChecker is satisfied by *docstore.MongoDB.
type MongoChecker interface {
	Ping(ctx context.Context) error
}

type StatusResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type DBTestResponse struct {
	Status     string              `json:"status"`
	PostgreSQL string              `json:"postgresql"`
	MongoDB    string              `json:"mongodb"`
	Timestamp  *time.Time          `json:"timestamp"`
	Pool       *database.PoolStats `json:"pool,omitempty"`
}

type Handler struct {
	postgres PostgresChecker
	mongo    MongoChecker
	now      func() time.Time
}

// NewHealthHandler accepts nil checkers; the matching store is then reported as not configured.
func NewHealthHandler(postgres PostgresChecker, mongo MongoChecker) *Handler {
	return &Handler{
		postgres: postgres,
		mongo:    mongo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Status is a liveness check and never touches a store.
func (h *Handler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, StatusResponse{
		Status: "ok",
		Time:   h.now(),
	})
}

// TestDB reports each store independently. Store failures land in the body; the status code is always 200.
func (h *Handler) TestDB(c *gin.Context) {
	ctx := c.Request.Context()
	out := DBTestResponse{
		Status:     "ok",
		PostgreSQL: statusNotConfigured,
		MongoDB:    statusNotConfigured,
	}

	if h.postgres != nil {
		if ts, err := h.postgres.Now(ctx); err != nil {
			out.PostgreSQL = "error: " + err.Error()
		} else {
			out.PostgreSQL = statusConnected
			out.Timestamp = &ts
			if stats, err := h.postgres.Stats(); err == nil {
				out.Pool = stats
			}
		}
	}

	if h.mongo != nil {
		if err := h.mongo.Ping(ctx); err != nil {
			out.MongoDB = "error: " + err.Error()
		} else {
			out.MongoDB = statusConnected
		}
	}

	response.Success(c, http.StatusOK, out)
}
