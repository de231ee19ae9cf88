package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"restro-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Reserve clients send Idempotency-Key and read Location, so these survive any
// CORS_* override.
var (
	requiredAllowHeaders  = []string{"Content-Type", "Idempotency-Key", RequestIDHeader}
	requiredExposeHeaders = []string{"Location", "Content-Disposition", RequestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := CORSConfig(cfg)
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders)
	return cors.New(corsCfg)
}

func CORSConfig(cfg config.CORSConfig) cors.Config {
	return cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		want := http.CanonicalHeaderKey(h)
		if !slices.ContainsFunc(out, func(c string) bool { return http.CanonicalHeaderKey(c) == want }) {
			out = append(out, h)
		}
	}
	return out
}
