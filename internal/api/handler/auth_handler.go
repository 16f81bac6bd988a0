package handler

import (
	"net/http"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/response"
	"tubehub/internal/config"
	"tubehub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	session     config.SessionConfig
}

func NewAuthHandler(authService *service.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

// Sync 同步身份提供方的登录结果
// @Summary 同步登录
// @Description 校验身份提供方签发的 token，首次登录时创建用户和频道，并把频道设为活跃 profile
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SyncRequest true "身份 token"
// @Success 200 {object} dto.SessionInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/sync [post]
func (h *AuthHandler) Sync(c *gin.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	info, err := h.authService.Sync(c.Request.Context(), req.Token)
	if err != nil {
		handleServiceError(c, "sign-in sync", err)
		return
	}

	h.setProfileCookie(c, info.Channel.ID, h.session.MaxAgeSeconds())
	response.OK(c, info)
}

// SignOut 清除活跃 profile
// @Summary 退出
// @Tags 认证
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.setProfileCookie(c, "", -1)
	response.OK(c, gin.H{"success": true})
}

func (h *AuthHandler) setProfileCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, value, maxAge, "/", h.session.Domain, h.session.Secure, false)
}
