package service

import "errors"

// 错误分类，handler 按分类映射 HTTP 状态码
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Error 带分类的业务错误，Error() 返回可直接展示给用户的短消息
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrNoActiveProfile = newError(ErrUnauthorized, "no active profile")
	ErrInvalidIdentity = newError(ErrUnauthorized, "invalid identity token")

	ErrMissingVideoID       = newError(ErrBadRequest, "videoId is required")
	ErrInvalidTarget        = newError(ErrBadRequest, "target must be watch_later or playlist")
	ErrMissingPlaylist      = newError(ErrBadRequest, "playlistId or newPlaylistName is required")
	ErrMissingPlaylistID    = newError(ErrBadRequest, "playlistId is required")
	ErrMissingChannelID     = newError(ErrBadRequest, "channel id is required")
	ErrMissingBanner        = newError(ErrBadRequest, "banner is required")
	ErrInvalidAccountType   = newError(ErrBadRequest, "invalid account type")
	ErrEmptyProfileUpdate   = newError(ErrBadRequest, "nothing to update")
	ErrEmptyMessage         = newError(ErrBadRequest, "message is required")
	ErrMissingMessageID     = newError(ErrBadRequest, "id is required")
	ErrMissingIdentityToken = newError(ErrBadRequest, "token is required")

	ErrNotChannelOwner = newError(ErrForbidden, "you do not own this channel")

	ErrChannelNotFound  = newError(ErrNotFound, "channel not found")
	ErrPlaylistNotFound = newError(ErrNotFound, "playlist not found")
	ErrMessageNotFound  = newError(ErrNotFound, "message not found")

	// ErrSearchUnavailable 目录和频道两路查询都失败
	ErrSearchUnavailable = errors.New("search unavailable")
)
