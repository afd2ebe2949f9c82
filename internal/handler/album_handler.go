package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/middleware"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
	"github.com/open-music/server/pkg/logger"
)

type albumPayload struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// CreateAlbum 创建专辑
// POST /albums
func (h *Handler) CreateAlbum(c *gin.Context) {
	var payload albumPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	id, err := h.albumService.Create(c.Request.Context(), payload.Name, payload.Year)
	if err != nil {
		h.fail(c, err, "Failed to create album")
		return
	}

	httputil.Success(c, http.StatusCreated, gin.H{"albumId": id})
}

// ListAlbums 获取全部专辑
// GET /albums
func (h *Handler) ListAlbums(c *gin.Context) {
	albums, err := h.albumService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to list albums")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"albums": albums})
}

// GetAlbum 获取专辑详情及歌曲
// GET /albums/:id
func (h *Handler) GetAlbum(c *gin.Context) {
	album, err := h.albumService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to get album")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"album": album})
}

// UpdateAlbum 更新专辑
// PUT /albums/:id
func (h *Handler) UpdateAlbum(c *gin.Context) {
	var payload albumPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	if err := h.albumService.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.Year); err != nil {
		h.fail(c, err, "Failed to update album")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "album updated", nil)
}

// DeleteAlbum 删除专辑
// DELETE /albums/:id
func (h *Handler) DeleteAlbum(c *gin.Context) {
	if err := h.albumService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete album")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "album deleted", nil)
}

// UploadAlbumCover 上传专辑封面
// POST /albums/:id/covers
func (h *Handler) UploadAlbumCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		httputil.Fail(c, errors.Validation("cover file is required"))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httputil.Fail(c, errors.Validation("cover must be an image"))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, errors.Wrap(err, errors.KindInternal, "failed to open upload"), "Failed to open upload")
		return
	}
	defer src.Close()

	stored, err := h.storage.Save(file.Filename, file.Size, src)
	if err != nil {
		h.fail(c, err, "Failed to store cover")
		return
	}

	url := h.storage.FileURL(stored)
	if err := h.albumService.SetCover(c.Request.Context(), c.Param("id"), url); err != nil {
		h.fail(c, err, "Failed to set album cover")
		return
	}

	httputil.SuccessMessage(c, http.StatusCreated, "cover uploaded", nil)
}

// LikeAlbum 给专辑点赞
// POST /albums/:id/likes
func (h *Handler) LikeAlbum(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.albumService.AddLike(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, err, "Failed to like album")
		return
	}

	httputil.SuccessMessage(c, http.StatusCreated, "album liked", nil)
}

// UnlikeAlbum 取消专辑点赞
// DELETE /albums/:id/likes
func (h *Handler) UnlikeAlbum(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.albumService.RemoveLike(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, err, "Failed to unlike album")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "album unliked", nil)
}

// GetAlbumLikes 获取专辑点赞数，命中缓存时设置X-Data-Source响应头
// GET /albums/:id/likes
func (h *Handler) GetAlbumLikes(c *gin.Context) {
	count, err := h.albumService.LikeCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to get album likes")
		return
	}

	if count.Cached {
		c.Header("X-Data-Source", "cache")
	}
	httputil.Success(c, http.StatusOK, gin.H{"likes": count.Count})
}

// fail 记录服务器故障并返回统一错误响应
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	if errors.GetHTTPStatus(err) >= http.StatusInternalServerError {
		h.log.WithContext(c.Request.Context()).WithFields(
			logger.String("path", c.Request.URL.Path),
			logger.Error(err),
		).Error(msg)
	}
	httputil.Fail(c, err)
}
