// Package middleware provides gin middleware for the HTTP server.
package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
	"github.com/open-music/server/pkg/jwt"
	"github.com/open-music/server/pkg/logger"
)

// 上下文键
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// RequestID 中间件 - 为每个请求生成唯一ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CORS 中间件
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-Data-Source")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Auth 中间件 - 校验访问令牌并注入用户ID
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.Fail(c, errors.Authentication("missing authentication token"))
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			httputil.Fail(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AccessLog 中间件 - 记录请求访问日志
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.WithContext(c.Request.Context()).WithFields(
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		).Info("Request handled")
	}
}

// Recovery 中间件 - 捕获panic并返回统一错误响应
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithContext(c.Request.Context()).WithFields(
					logger.Any("panic", r),
					logger.String("path", c.Request.URL.Path),
				).Error("Panic recovered")

				httputil.Fail(c, errors.Internal(nil))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// UserID 从请求上下文取出认证用户ID
func UserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}
