package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/middleware"
	"github.com/open-music/server/pkg/jwt"
	"github.com/open-music/server/pkg/logger"
)

// NewRouter 构建gin引擎并注册全部路由
func NewRouter(h *Handler, jwtManager *jwt.Manager, uploadDir string, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.AccessLog(log))

	auth := middleware.Auth(jwtManager)

	r.GET("/health", h.Health)

	// 专辑
	albums := r.Group("/albums")
	{
		albums.POST("", h.CreateAlbum)
		albums.GET("", h.ListAlbums)
		albums.GET("/:id", h.GetAlbum)
		albums.PUT("/:id", h.UpdateAlbum)
		albums.DELETE("/:id", h.DeleteAlbum)
		albums.POST("/:id/covers", h.UploadAlbumCover)
		albums.GET("/:id/likes", h.GetAlbumLikes)
		albums.POST("/:id/likes", auth, h.LikeAlbum)
		albums.DELETE("/:id/likes", auth, h.UnlikeAlbum)
	}

	// 歌曲
	songs := r.Group("/songs")
	{
		songs.POST("", h.CreateSong)
		songs.GET("", h.ListSongs)
		songs.GET("/:id", h.GetSong)
		songs.PUT("/:id", h.UpdateSong)
		songs.DELETE("/:id", h.DeleteSong)
	}

	// 用户与认证
	r.POST("/users", h.RegisterUser)
	r.GET("/users/:id", h.GetUser)
	authentications := r.Group("/authentications")
	{
		authentications.POST("", h.Login)
		authentications.PUT("", h.RefreshToken)
		authentications.DELETE("", h.Logout)
	}

	// 播放列表
	playlists := r.Group("/playlists", auth)
	{
		playlists.POST("", h.CreatePlaylist)
		playlists.GET("", h.ListPlaylists)
		playlists.DELETE("/:id", h.DeletePlaylist)
		playlists.POST("/:id/songs", h.AddPlaylistSong)
		playlists.GET("/:id/songs", h.GetPlaylistSongs)
		playlists.DELETE("/:id/songs", h.RemovePlaylistSong)
		playlists.GET("/:id/activities", h.GetPlaylistActivities)
	}

	// 协作者
	collaborations := r.Group("/collaborations", auth)
	{
		collaborations.POST("", h.AddCollaboration)
		collaborations.DELETE("", h.RemoveCollaboration)
	}

	// 导出
	r.POST("/export/playlists/:playlistId", auth, h.ExportPlaylist)

	// 封面静态文件
	r.Static("/upload/images", uploadDir)

	return r
}
