package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/shop-ecom/internal/logx"
)

const ridKey = "rid"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RID returns the request id set by RequestID, or "".
func RID(c *gin.Context) string {
	return c.GetString(ridKey)
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := logx.Info()
		if c.Writer.Status() >= 500 {
			ev = logx.Error()
		}
		ev.Str("component", "http").
			Str("rid", RID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("request")
	}
}

// NewEngine builds a gin engine with the middleware chain every service shares.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(), gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	return r
}
