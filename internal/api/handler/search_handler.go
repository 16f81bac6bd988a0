package handler

import (
	"errors"
	"strconv"
	"strings"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
	feedService   *service.FeedService
}

func NewSearchHandler(searchService *service.SearchService, feedService *service.FeedService) *SearchHandler {
	return &SearchHandler{searchService: searchService, feedService: feedService}
}

// Search 聚合搜索
// @Summary 聚合搜索
// @Description 同时搜索视频目录和频道；少于 2 个字符直接返回空结果
// @Tags 搜索
// @Produce json
// @Param q query string false "关键词"
// @Param limit query int false "数量" default(5)
// @Param dropdown query bool false "下拉联想模式"
// @Success 200 {object} dto.SearchResult
// @Failure 500 {object} response.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	req := dto.SearchRequest{
		Q:        c.Query("q"),
		Limit:    queryInt(c, "limit"),
		Dropdown: queryBool(c, "dropdown"),
	}

	result, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSearchUnavailable) {
			logger.Error("Search failed", zap.String("q", req.Q), zap.Error(err))
			response.InternalError(c, "search unavailable")
			return
		}
		handleServiceError(c, "search", err)
		return
	}
	response.OK(c, result)
}

// Videos 首页视频
// @Summary 首页视频
// @Tags 视频
// @Produce json
// @Param limit query int false "数量" default(24)
// @Success 200 {object} map[string][]model.Video
// @Router /videos [get]
func (h *SearchHandler) Videos(c *gin.Context) {
	videos, err := h.feedService.Videos(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		handleServiceError(c, "list videos", err)
		return
	}
	response.OK(c, gin.H{"videos": videos})
}

// Styles 短视频
// @Summary 短视频
// @Tags 视频
// @Produce json
// @Param limit query int false "数量" default(24)
// @Success 200 {object} map[string][]model.Video
// @Router /styles [get]
func (h *SearchHandler) Styles(c *gin.Context) {
	videos, err := h.feedService.Styles(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		handleServiceError(c, "list styles", err)
		return
	}
	response.OK(c, gin.H{"videos": videos})
}

// queryInt 无法解析时返回 0，由服务层换成默认值
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}

// queryBool 只有 true / 1 视为真
func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "true", "1":
		return true
	}
	return false
}
