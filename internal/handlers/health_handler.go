package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Pinger is anything that can check its connection, e.g. a pgx pool
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	mailState func() string
}

// NewHealthHandler creates a health handler. mailState may be nil.
func NewHealthHandler(db Pinger, mailState func() string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		mailState: mailState,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	body := gin.H{"status": "ok"}
	if h.mailState != nil {
		body["mail"] = h.mailState()
	}

	if err := h.db.Ping(ctx); err != nil {
		attachError(c, err)
		body["status"] = "unavailable"
		body["reason"] = "database unreachable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
