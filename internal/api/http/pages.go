package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsenadheera/portfolio/internal/logging"
	"github.com/tsenadheera/portfolio/internal/render"
)

const MsgPageNotFound = "Page not found"

// PageHandler serves the rendered portfolio and the 404 shell.
type PageHandler struct {
	renderer *render.Renderer
	now      func() time.Time
}

func NewPageHandler(r *render.Renderer) *PageHandler {
	return &PageHandler{renderer: r, now: time.Now}
}

func (h *PageHandler) Index(c *gin.Context) {
	h.write(c, http.StatusOK, render.Page{Year: h.now().Year()})
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.write(c, http.StatusNotFound, render.Page{
		Title: render.NotFoundTitle,
		Error: MsgPageNotFound,
		Year:  h.now().Year(),
	})
}

func (h *PageHandler) write(c *gin.Context, status int, pg render.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, pg); err != nil {
		logging.FromContext(c.Request.Context()).Error("render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong!")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// RegisterRoutes mounts GET / and the fallback for unmatched routes.
func (h *PageHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.NoRoute(h.NotFound)
}
