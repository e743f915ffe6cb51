package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aaru/pkg/metrics"
	"aaru/pkg/trace"
	"aaru/pkg/util"
)

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		subject, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("subject", subject)
		c.Next()
	}
}

// TraceMiddleware propagates the inbound trace id, or mints one, so log
// lines across a request correlate.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(trace.Header)
		if traceID == "" {
			traceID = trace.NewID()
		}
		c.Request = c.Request.WithContext(trace.WithContext(c.Request.Context(), traceID))
		c.Header(trace.Header, traceID)
		c.Next()
	}
}

// RequestLogMiddleware logs each request and records its latency.
func RequestLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordHTTPRequestDuration(c.Request.Method, c.FullPath(), strconv.Itoa(status), latency)

		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("trace_id", trace.FromContext(c.Request.Context())),
		)
	}
}
