package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type songPayload struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (p *songPayload) toSong() *domain.Song {
	return &domain.Song{
		Title:     p.Title,
		Year:      p.Year,
		Genre:     p.Genre,
		Performer: p.Performer,
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
}

// CreateSong 创建歌曲
// POST /songs
func (h *Handler) CreateSong(c *gin.Context) {
	var payload songPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	id, err := h.songService.Create(c.Request.Context(), payload.toSong())
	if err != nil {
		h.fail(c, err, "Failed to create song")
		return
	}

	httputil.Success(c, http.StatusCreated, gin.H{"songId": id})
}

// ListSongs 按标题与演唱者筛选歌曲
// GET /songs?title=&performer=
func (h *Handler) ListSongs(c *gin.Context) {
	songs, err := h.songService.List(c.Request.Context(), c.Query("title"), c.Query("performer"))
	if err != nil {
		h.fail(c, err, "Failed to list songs")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"songs": songs})
}

// GetSong 获取歌曲详情
// GET /songs/:id
func (h *Handler) GetSong(c *gin.Context) {
	song, err := h.songService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to get song")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"song": song})
}

// UpdateSong 更新歌曲
// PUT /songs/:id
func (h *Handler) UpdateSong(c *gin.Context) {
	var payload songPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	song := payload.toSong()
	song.ID = c.Param("id")
	if err := h.songService.Update(c.Request.Context(), song); err != nil {
		h.fail(c, err, "Failed to update song")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "song updated", nil)
}

// DeleteSong 删除歌曲
// DELETE /songs/:id
func (h *Handler) DeleteSong(c *gin.Context) {
	if err := h.songService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete song")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "song deleted", nil)
}
