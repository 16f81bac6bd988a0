package middleware

import (
	"strings"

	"tubehub/internal/api/response"

	"github.com/gin-gonic/gin"
)

const ContextKeyProfileID = "activeProfileID"

// ActiveProfile 从 cookie 读取活跃 profile ID 放入上下文。
// cookie 是明文 ID，只用于界面连续性，不能当作凭证
func ActiveProfile(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(cookieName); err == nil {
			if id = strings.TrimSpace(id); id != "" {
				c.Set(ContextKeyProfileID, id)
			}
		}
		c.Next()
	}
}

// ProfileRequired 没有活跃 profile 时返回 401（必须在 ActiveProfile 之后使用）
func ProfileRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetActiveProfileID(c); !ok {
			response.Unauthorized(c, "no active profile")
			return
		}
		c.Next()
	}
}

// GetActiveProfileID 从 Gin Context 中获取活跃 profile ID
func GetActiveProfileID(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyProfileID)
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
