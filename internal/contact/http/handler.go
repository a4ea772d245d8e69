package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsenadheera/portfolio/internal/contact/domain"
	"github.com/tsenadheera/portfolio/internal/logging"
)

// Submitter is implemented by the contact service.
type Submitter interface {
	Submit(ctx context.Context, sub domain.Submission) error
}

type Handler struct {
	svc Submitter
}

func New(svc Submitter) *Handler {
	return &Handler{svc: svc}
}

// Register mounts POST /contact. Middleware (rate limiting) runs before the
// handler.
func (h *Handler) Register(r gin.IRouter, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), h.Submit)
	r.POST("/contact", handlers...)
}

// Submit accepts JSON or urlencoded bodies.
func (h *Handler) Submit(c *gin.Context) {
	var req domain.Submission
	if err := c.ShouldBind(&req); err != nil {
		logging.FromContext(c.Request.Context()).Info("contact request rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, domain.Result{Success: false, Message: domain.MsgBadRequest})
		return
	}

	err := h.svc.Submit(c.Request.Context(), req)

	var ve *domain.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, domain.Result{Success: true, Message: domain.MsgSuccess})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, domain.Result{Success: false, Message: ve.Reason})
	default:
		if !errors.Is(err, domain.ErrDelivery) {
			logging.FromContext(c.Request.Context()).Error("contact form error", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, domain.Result{Success: false, Message: domain.MsgServerError})
	}
}
