package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 64
)

// requestID берёт X-Request-ID из запроса или генерирует новый.
// Чужой идентификатор принимается, только если это короткий токен.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.', ch == ':':
		default:
			return false
		}
	}
	return true
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// formOverhead запас на поля формы сверх закодированного снимка
const formOverhead = 64 << 10

// formBodyLimit лимит тела для POST /: снимок может прийти обратно
// в скрытом поле base64, а это 4/3 от размера файла.
func formBodyLimit(max int64) int64 {
	return max/3*4 + 4 + formOverhead
}

// limitBody ограничивает размер тела запроса.
func limitBody(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := max
		if c.Request.Method == http.MethodPost && c.FullPath() == "/" {
			limit = formBodyLimit(max)
		}
		if max > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// skipReportCompression отключает gzip для PDF, который отдаёт форма на POST /.
// Должен стоять после limitBody и до gzip.
func skipReportCompression() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost && c.FullPath() == "/" && c.PostForm("action") == actionReport {
			c.Request.Header.Del("Accept-Encoding")
		}
		c.Next()
	}
}
