package handler

import (
	"strconv"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementService *service.EngagementService
}

func NewEngagementHandler(engagementService *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// GetSaveStatus 查询保存状态
// @Summary 查询保存状态
// @Tags 保存
// @Produce json
// @Param videoId query string true "视频ID"
// @Success 200 {object} dto.SaveStatus
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /engagement/save [get]
func (h *EngagementHandler) GetSaveStatus(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)

	status, err := h.engagementService.GetSaveStatus(c.Request.Context(), profileID, c.Query("videoId"))
	if err != nil {
		handleServiceError(c, "get save status", err)
		return
	}
	response.OK(c, status)
}

// Save 保存视频
// @Summary 保存视频
// @Description target 为 watch_later 或 playlist；playlist 需要 playlistId 或 newPlaylistName
// @Tags 保存
// @Accept json
// @Produce json
// @Param request body dto.SaveRequest true "保存目标"
// @Success 200 {object} dto.SaveResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /engagement/save [post]
func (h *EngagementHandler) Save(c *gin.Context) {
	var req dto.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profileID, _ := middleware.GetActiveProfileID(c)
	result, err := h.engagementService.Save(c.Request.Context(), profileID, &req)
	if err != nil {
		handleServiceError(c, "save video", err)
		return
	}
	response.OK(c, result)
}

// Unsave 取消保存
// @Summary 取消保存
// @Tags 保存
// @Produce json
// @Param videoId query string true "视频ID"
// @Param target query string true "watch_later 或 playlist"
// @Param playlistId query int false "播放列表ID（target=playlist 时必填）"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /engagement/save [delete]
func (h *EngagementHandler) Unsave(c *gin.Context) {
	var req dto.UnsaveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	profileID, _ := middleware.GetActiveProfileID(c)
	if err := h.engagementService.Unsave(c.Request.Context(), profileID, &req); err != nil {
		handleServiceError(c, "unsave video", err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// ListPlaylists 我的播放列表
// @Summary 我的播放列表
// @Tags 保存
// @Produce json
// @Success 200 {object} map[string][]dto.PlaylistInfo
// @Failure 401 {object} response.ErrorResponse
// @Router /playlists [get]
func (h *EngagementHandler) ListPlaylists(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)

	playlists, err := h.engagementService.ListPlaylists(c.Request.Context(), profileID)
	if err != nil {
		handleServiceError(c, "list playlists", err)
		return
	}
	response.OK(c, gin.H{"playlists": playlists})
}

// ListPlaylistVideos 播放列表中的视频
// @Summary 播放列表中的视频
// @Tags 保存
// @Produce json
// @Param id path int true "播放列表ID"
// @Success 200 {object} map[string][]string
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /playlists/{id}/videos [get]
func (h *EngagementHandler) ListPlaylistVideos(c *gin.Context) {
	playlistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid playlist id")
		return
	}

	profileID, _ := middleware.GetActiveProfileID(c)
	ids, err := h.engagementService.ListPlaylistVideos(c.Request.Context(), profileID, playlistID)
	if err != nil {
		handleServiceError(c, "list playlist videos", err)
		return
	}
	response.OK(c, gin.H{"videoIds": ids})
}

// ListWatchLater 稍后观看
// @Summary 稍后观看
// @Tags 保存
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401 {object} response.ErrorResponse
// @Router /watch-later [get]
func (h *EngagementHandler) ListWatchLater(c *gin.Context) {
	profileID, _ := middleware.GetActiveProfileID(c)

	ids, err := h.engagementService.ListWatchLater(c.Request.Context(), profileID)
	if err != nil {
		handleServiceError(c, "list watch later", err)
		return
	}
	response.OK(c, gin.H{"videoIds": ids})
}
