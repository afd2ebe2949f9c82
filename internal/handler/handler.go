// Package handler implements the HTTP API surface.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/service"
	"github.com/open-music/server/internal/storage"
	"github.com/open-music/server/pkg/logger"
)

// Handler 聚合所有HTTP处理器依赖
type Handler struct {
	albumService    *service.AlbumService
	songService     *service.SongService
	userService     *service.UserService
	authService     *service.AuthService
	playlistService *service.PlaylistService
	collabService   *service.CollaborationService
	exportService   *service.ExportService
	storage         storage.Storage
	log             logger.Logger
}

// New 创建处理器
func New(
	albumService *service.AlbumService,
	songService *service.SongService,
	userService *service.UserService,
	authService *service.AuthService,
	playlistService *service.PlaylistService,
	collabService *service.CollaborationService,
	exportService *service.ExportService,
	store storage.Storage,
	log logger.Logger,
) *Handler {
	return &Handler{
		albumService:    albumService,
		songService:     songService,
		userService:     userService,
		authService:     authService,
		playlistService: playlistService,
		collabService:   collabService,
		exportService:   exportService,
		storage:         store,
		log:             log,
	}
}

// Health 存活探针
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "open-music",
	})
}
