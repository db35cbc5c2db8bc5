package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 捕获 panic 返回 500；handler 通过 c.Error 记录的错误统一写日志
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v\n%s", r, debug.Stack())
				c.Abort()
				ginx.InternalError(c, "internal server error")
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Errorf(c.Request.Context(), "request failed: %s %s, error=%v", c.Request.Method, c.FullPath(), err.Err)
		} else {
			log.Warnf(c.Request.Context(), "request rejected: %s %s, status=%d, error=%v",
				c.Request.Method, c.FullPath(), c.Writer.Status(), err.Err)
		}

		// handler 未写响应时兜底
		if !c.Writer.Written() {
			ginx.InternalError(c, "internal server error")
		}
	}
}
