package dto

import "time"

// 保存目标
const (
	TargetWatchLater = "watch_later"
	TargetPlaylist   = "playlist"
)

// SaveRequest 保存视频请求（POST body）
type SaveRequest struct {
	VideoID         string `json:"videoId"`
	Target          string `json:"target"`
	PlaylistID      *int64 `json:"playlistId"`
	NewPlaylistName string `json:"newPlaylistName"`
}

// UnsaveRequest 取消保存请求（DELETE query）
type UnsaveRequest struct {
	VideoID    string `form:"videoId"`
	Target     string `form:"target"`
	PlaylistID *int64 `form:"playlistId"`
}

// PlaylistInfo 播放列表信息
type PlaylistInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlaylistStatus 视频在某个播放列表中的状态
type PlaylistStatus struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Saved bool   `json:"saved"`
}

// SaveStatus 视频的保存状态
type SaveStatus struct {
	VideoID    string           `json:"videoId"`
	WatchLater bool             `json:"watchLater"`
	Playlists  []PlaylistStatus `json:"playlists"`
}

// SaveResult 保存结果；新建播放列表时 Playlist 非空
type SaveResult struct {
	VideoID    string        `json:"videoId"`
	Target     string        `json:"target"`
	PlaylistID *int64        `json:"playlistId,omitempty"`
	Added      bool          `json:"added"`
	Playlist   *PlaylistInfo `json:"playlist,omitempty"`
}
