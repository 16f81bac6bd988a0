package handler

import (
	"strconv"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/response"
	"tubehub/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// List 社区反馈列表
// @Summary 社区反馈列表
// @Tags 社区
// @Produce json
// @Param limit query int false "数量" default(50)
// @Success 200 {object} map[string][]model.CommunityMessage
// @Router /community [get]
func (h *CommunityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.communityService.List(c.Request.Context(), limit)
	if err != nil {
		handleServiceError(c, "list community messages", err)
		return
	}
	response.OK(c, gin.H{"messages": msgs})
}

// Create 提交社区反馈
// @Summary 提交社区反馈
// @Tags 社区
// @Accept json
// @Produce json
// @Param request body dto.CreateCommunityMessageRequest true "反馈"
// @Success 201 {object} map[string]model.CommunityMessage
// @Failure 400 {object} response.ErrorResponse
// @Router /community [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	var req dto.CreateCommunityMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	msg, err := h.communityService.Create(c.Request.Context(), req.Type, req.Message)
	if err != nil {
		handleServiceError(c, "create community message", err)
		return
	}
	response.Created(c, gin.H{"message": msg})
}

// Delete 删除社区反馈
// @Summary 删除社区反馈
// @Tags 社区
// @Produce json
// @Param id query string true "反馈ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /community [delete]
func (h *CommunityHandler) Delete(c *gin.Context) {
	if err := h.communityService.Delete(c.Request.Context(), c.Query("id")); err != nil {
		handleServiceError(c, "delete community message", err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
