package middleware

import (
	"strings"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

var cspDirectives = []string{
	"default-src 'self'",
	"style-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com https://fonts.googleapis.com",
	"script-src 'self' 'unsafe-inline' https://kit.fontawesome.com https://cdnjs.cloudflare.com",
	"img-src 'self' data: https:",
	"font-src 'self' https://fonts.gstatic.com https://kit.fontawesome.com",
	"connect-src 'self'",
}

// ContentSecurityPolicy is the policy sent with every response.
func ContentSecurityPolicy() string {
	return strings.Join(cspDirectives, "; ")
}

// Security sets the browser hardening headers. HSTS is only sent in
// production.
func Security(production bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      false,
		IENoOpen:              true,
		ContentSecurityPolicy: ContentSecurityPolicy(),
		ReferrerPolicy:        "no-referrer",
	}
	if production {
		cfg.STSSeconds = 15552000
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}
