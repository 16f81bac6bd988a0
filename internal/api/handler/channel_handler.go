package handler

import (
	"tubehub/internal/api/dto"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"

	"github.com/gin-gonic/gin"
)

// 横幅上传大小上限
const maxBannerSize = 8 << 20

type ChannelHandler struct {
	channelService *service.ChannelService
}

func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// GetChannel 获取频道
// @Summary 获取频道
// @Tags 频道
// @Produce json
// @Param id path string true "频道ID"
// @Success 200 {object} map[string]dto.ChannelInfo
// @Failure 404 {object} response.ErrorResponse
// @Router /channel/{id} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	info, err := h.channelService.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, "get channel", err)
		return
	}
	response.OK(c, gin.H{"channel": info})
}

// UpdateBanner 更新频道横幅
// @Summary 更新频道横幅
// @Description 只有活跃 profile 与频道 ID 一致时才允许修改
// @Tags 频道
// @Accept json
// @Produce json
// @Param id path string true "频道ID"
// @Param request body dto.UpdateBannerRequest true "横幅地址"
// @Success 200 {object} map[string]dto.ChannelInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /channel/{id} [post]
func (h *ChannelHandler) UpdateBanner(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)
	if err := service.CheckChannelOwner(profileID, c.Param("id")); err != nil {
		handleServiceError(c, "update banner", err)
		return
	}

	var req dto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	info, err := h.channelService.UpdateBanner(c.Request.Context(), profileID, c.Param("id"), req.Banner)
	if err != nil {
		handleServiceError(c, "update banner", err)
		return
	}
	response.OK(c, gin.H{"channel": info})
}

// UploadBanner 上传频道横幅图片
// @Summary 上传频道横幅
// @Tags 频道
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "频道ID"
// @Param file formData file true "横幅图片"
// @Success 200 {object} map[string]dto.ChannelInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /channel/{id}/banner [post]
func (h *ChannelHandler) UploadBanner(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)
	if err := service.CheckChannelOwner(profileID, c.Param("id")); err != nil {
		handleServiceError(c, "upload banner", err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if file.Size > maxBannerSize {
		response.BadRequest(c, "file too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file")
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := h.channelService.UploadBanner(c.Request.Context(), profileID, c.Param("id"), file.Filename, src, file.Size, contentType)
	if err != nil {
		handleServiceError(c, "upload banner", err)
		return
	}
	response.OK(c, gin.H{"channel": info})
}

// UpdateProfile 更新频道资料
// @Summary 更新频道资料
// @Tags 频道
// @Accept json
// @Produce json
// @Param id path string true "频道ID"
// @Param request body dto.UpdateProfileRequest true "资料"
// @Success 200 {object} map[string]dto.ChannelInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /channel/{id}/profile [put]
func (h *ChannelHandler) UpdateProfile(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)
	if err := service.CheckChannelOwner(profileID, c.Param("id")); err != nil {
		handleServiceError(c, "update profile", err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	info, err := h.channelService.UpdateProfile(c.Request.Context(), profileID, c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, "update profile", err)
		return
	}
	response.OK(c, gin.H{"channel": info})
}

// GetAvatar 获取频道头像
// @Summary 获取频道头像
// @Description 同时把头像同步到视频目录（失败不影响返回）
// @Tags 频道
// @Produce json
// @Param id path string true "频道ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /channel-avatar/{id} [get]
func (h *ChannelHandler) GetAvatar(c *gin.Context) {
	avatar, err := h.channelService.GetAvatar(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, "get avatar", err)
		return
	}
	response.OK(c, gin.H{"avatar": avatar})
}
