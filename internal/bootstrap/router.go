package bootstrap

import (
	"fmt"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/tsenadheera/portfolio/internal/api/http"
	"github.com/tsenadheera/portfolio/internal/api/http/middleware"
	"github.com/tsenadheera/portfolio/internal/contact/domain"
	contacthttp "github.com/tsenadheera/portfolio/internal/contact/http"
	"github.com/tsenadheera/portfolio/internal/ratelimit"
	"github.com/tsenadheera/portfolio/internal/render"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Production  bool
	Logger      *zap.Logger

	Renderer *render.Renderer
	Contact  contacthttp.Submitter
	Limiter  *ratelimit.Limiter
	// StorePinger is set when the rate-limit store is remote.
	StorePinger httpapi.Pinger

	StaticDir      string
	CORSOrigins    []string
	TrustedProxies []string
}

// staticRoutes are served as opaque files from subdirectories of StaticDir.
var staticRoutes = []string{"images", "static", "documents"}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Logger == nil {
		dep.Logger = zap.NewNop()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(middleware.Security(dep.Production))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	for _, dir := range staticRoutes {
		r.Static("/"+dir, filepath.Join(dep.StaticDir, dir))
	}

	storeName := ""
	if dep.Limiter != nil {
		storeName = dep.Limiter.StoreName()
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, storeName, dep.StorePinger)
	healthHandler.RegisterRoutes(r)

	pages := httpapi.NewPageHandler(dep.Renderer)
	pages.RegisterRoutes(r)

	var limits []gin.HandlerFunc
	if dep.Limiter != nil {
		limits = append(limits, middleware.RateLimit(dep.Limiter, domain.Result{
			Success: false,
			Message: domain.RateLimitedMessage(dep.Limiter.Window()),
		}))
	}
	contacthttp.New(dep.Contact).Register(r, limits...)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{
			middleware.HeaderRequestID,
			"RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset", "Retry-After",
		},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
