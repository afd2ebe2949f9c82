package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/middleware"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type playlistPayload struct {
	Name string `json:"name"`
}

type playlistSongPayload struct {
	SongID string `json:"songId"`
}

// CreatePlaylist 创建播放列表
// POST /playlists
func (h *Handler) CreatePlaylist(c *gin.Context) {
	var payload playlistPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	id, err := h.playlistService.Create(c.Request.Context(), middleware.UserID(c), payload.Name)
	if err != nil {
		h.fail(c, err, "Failed to create playlist")
		return
	}

	httputil.Success(c, http.StatusCreated, gin.H{"playlistId": id})
}

// ListPlaylists 获取当前用户可见的播放列表
// GET /playlists
func (h *Handler) ListPlaylists(c *gin.Context) {
	playlists, err := h.playlistService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err, "Failed to list playlists")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

// DeletePlaylist 删除播放列表，仅所有者可操作
// DELETE /playlists/:id
func (h *Handler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistService.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		h.fail(c, err, "Failed to delete playlist")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "playlist deleted", nil)
}

// AddPlaylistSong 添加歌曲到播放列表
// POST /playlists/:id/songs
func (h *Handler) AddPlaylistSong(c *gin.Context) {
	var payload playlistSongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	err := h.playlistService.AddSong(c.Request.Context(), c.Param("id"), middleware.UserID(c), payload.SongID)
	if err != nil {
		h.fail(c, err, "Failed to add song to playlist")
		return
	}

	httputil.SuccessMessage(c, http.StatusCreated, "song added to playlist", nil)
}

// GetPlaylistSongs 获取播放列表详情及歌曲
// GET /playlists/:id/songs
func (h *Handler) GetPlaylistSongs(c *gin.Context) {
	detail, err := h.playlistService.GetWithSongs(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.fail(c, err, "Failed to get playlist songs")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"playlist": detail})
}

// RemovePlaylistSong 从播放列表移除歌曲
// DELETE /playlists/:id/songs
func (h *Handler) RemovePlaylistSong(c *gin.Context) {
	var payload playlistSongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	err := h.playlistService.RemoveSong(c.Request.Context(), c.Param("id"), middleware.UserID(c), payload.SongID)
	if err != nil {
		h.fail(c, err, "Failed to remove song from playlist")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "song removed from playlist", nil)
}

// GetPlaylistActivities 获取播放列表活动记录
// GET /playlists/:id/activities
func (h *Handler) GetPlaylistActivities(c *gin.Context) {
	playlistID := c.Param("id")
	activities, err := h.playlistService.ListActivities(c.Request.Context(), playlistID, middleware.UserID(c))
	if err != nil {
		h.fail(c, err, "Failed to get playlist activities")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{
		"playlistId": playlistID,
		"activities": activities,
	})
}
