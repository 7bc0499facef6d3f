package middleware

import (
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Logger emits one access log line per request. The request id falls
// back to the one the context middleware issued on the response.
func Logger(logger ectologger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
				if id == "" {
					id = uuid.New().String()
				}
			}

			logger.WithContext(req.Context()).WithFields(map[string]interface{}{
				"request_id":    id,
				"method":        req.Method,
				"route":         c.Path(),
				"uri":           req.RequestURI,
				"query":         c.QueryString(),
				"status":        res.Status,
				"remote_ip":     c.RealIP(),
				"user_agent":    req.UserAgent(),
				"referer":       req.Referer(),
				"response_time": time.Since(start).String(),
				"response_size": res.Size,
			}).Info("handled request")

			return nil
		}
	}
}
