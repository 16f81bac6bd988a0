package model

import "time"

// Playlist 播放列表，归属于单个 profile
type Playlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index:idx_playlists_user_id" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistItem 播放列表成员，(playlist_id, video_id) 唯一
type PlaylistItem struct {
	PlaylistID int64     `gorm:"primaryKey;autoIncrement:false" json:"playlist_id"`
	VideoID    string    `gorm:"primaryKey;size:128;index:idx_playlist_items_video_id" json:"video_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PlaylistItem) TableName() string {
	return "playlist_items"
}

// WatchLaterEntry 稍后观看，(user_id, video_id) 唯一
type WatchLaterEntry struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"user_id"`
	VideoID   string    `gorm:"primaryKey;size:128" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WatchLaterEntry) TableName() string {
	return "watch_later"
}
