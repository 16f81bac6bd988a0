package handler

import (
	"errors"
	"net/http"

	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError 按错误分类映射 HTTP 状态码。
// 未分类的错误视为存储故障：记录日志，只返回通用消息
func handleServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(op+" failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, op+" failed")
	}
}
