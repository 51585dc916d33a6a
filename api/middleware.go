package api

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	identityKey = "identity"
)

// Identity copies the caller supplied by the upstream gateway into the gin
// context. A missing or unknown role falls back to a plain user; handlers
// decide whether an anonymous caller is acceptable.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		if !role.Valid() {
			role = domain.RoleUser
		}
		c.Set(identityKey, domain.Identity{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Role:   role,
		})
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}

// RequestLogger writes one structured line per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if id := identityFrom(c); id.UserID != "" {
			attrs = append(attrs, slog.String("user_id", id.UserID))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("http request", attrs...)
		default:
			log.Info("http request", attrs...)
		}
	}
}
