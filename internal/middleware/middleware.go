package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// RequestLogger assigns a request id, stores a request scoped logger in the
// request context and logs the outcome once the handler chain returns.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = ulid.Make().String()
		}
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Set("requestID", requestID)

		reqLogger := base.With().Str("requestID", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		event := reqLogger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = reqLogger.Error()
		case status >= http.StatusBadRequest:
			event = reqLogger.Warn()
		}
		if principal, ok := appauth.PrincipalFromContext(c.Request.Context()); ok {
			event = event.Int64("userID", principal.UserID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins  []string
	AllowMethods  []string
	AllowHeaders  []string
	ExposeHeaders []string
	MaxAge        time.Duration
}

// DefaultCORSConfig returns the CORS settings for origins
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", headerRequestID, "Accept", "Origin"},
		ExposeHeaders: []string{headerRequestID, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
}

// CORS answers preflight requests and sets CORS headers for allowed origins.
// A "*" entry allows every origin; an empty list allows none.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowWildcard := false
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			allowWildcard = true
			break
		}
	}

	allowed := func(origin string) string {
		if allowWildcard {
			return "*"
		}
		for _, o := range cfg.AllowOrigins {
			if o == origin {
				return origin
			}
		}
		return ""
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowedOrigin := allowed(origin); allowedOrigin != "" {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
					h.Add("Vary", "Origin")
				}
				h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
				h.Set("Access-Control-Expose-Headers", strings.Join(cfg.ExposeHeaders, ", "))
				if cfg.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(int(cfg.MaxAge.Seconds())))
				}
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// BodyLimit caps request bodies at maxBytes. Reads past the limit fail,
// which surfaces as a malformed body to the JSON binder.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
