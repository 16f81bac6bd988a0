package router

import (
	"tubehub/internal/api/handler"
	"tubehub/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 路由依赖的全部 handler
type Handlers struct {
	Auth       *handler.AuthHandler
	Channel    *handler.ChannelHandler
	Community  *handler.CommunityHandler
	Engagement *handler.EngagementHandler
	Search     *handler.SearchHandler
	Favicon    *handler.FaviconHandler
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, cookieName string, h Handlers) {
	r.GET("/favicon.ico", h.Favicon.Serve)

	api := r.Group("/api", middleware.ActiveProfile(cookieName))

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/sync", h.Auth.Sync)
		auth.POST("/signout", h.Auth.SignOut)
	}

	// --- 频道模块 ---
	channel := api.Group("/channel")
	{
		channel.GET("/:id", h.Channel.GetChannel)
		channel.POST("/:id", h.Channel.UpdateBanner)
		channel.POST("/:id/banner", h.Channel.UploadBanner)
		channel.PUT("/:id/profile", h.Channel.UpdateProfile)
	}
	api.GET("/channel-avatar/:id", h.Channel.GetAvatar)

	// --- 社区反馈 ---
	community := api.Group("/community")
	{
		community.GET("", h.Community.List)
		community.POST("", h.Community.Create)
		community.DELETE("", middleware.ProfileRequired(), h.Community.Delete)
	}

	// --- 保存（稍后观看 / 播放列表） ---
	engagement := api.Group("", middleware.ProfileRequired())
	{
		engagement.GET("/engagement/save", h.Engagement.GetSaveStatus)
		engagement.POST("/engagement/save", h.Engagement.Save)
		engagement.DELETE("/engagement/save", h.Engagement.Unsave)

		engagement.GET("/playlists", h.Engagement.ListPlaylists)
		engagement.GET("/playlists/:id/videos", h.Engagement.ListPlaylistVideos)
		engagement.GET("/watch-later", h.Engagement.ListWatchLater)
	}

	// --- 搜索与视频流 ---
	api.GET("/search", h.Search.Search)
	api.GET("/videos", h.Search.Videos)
	api.GET("/styles", h.Search.Styles)
}
