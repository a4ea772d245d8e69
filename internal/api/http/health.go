package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Service        string    `json:"service"`
	Version        string    `json:"version"`
	RateLimitStore string    `json:"rate_limit_store,omitempty"`
}

// Pinger is implemented by stores with a remote backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	version     string
	storeName   string
	store       Pinger
	now         func() time.Time
}

// NewHealthHandler reports storeName as the rate-limit backend. store may be
// nil for in-process backends, which are always "up".
func NewHealthHandler(serviceName, version, storeName string, store Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		storeName:   storeName,
		store:       store,
		now:         time.Now,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storeStatus := ""
	if h.storeName != "" {
		storeStatus = h.storeName + ":up"
	}
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = h.storeName + ":down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:         "OK",
		Timestamp:      h.now().UTC(),
		Service:        h.serviceName,
		Version:        h.version,
		RateLimitStore: storeStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
