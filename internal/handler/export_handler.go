package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/middleware"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type exportPayload struct {
	TargetEmail string `json:"targetEmail"`
}

// ExportPlaylist 发起播放列表异步导出
// POST /export/playlists/:playlistId
func (h *Handler) ExportPlaylist(c *gin.Context) {
	var payload exportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	err := h.exportService.Export(c.Request.Context(), c.Param("playlistId"), middleware.UserID(c), payload.TargetEmail)
	if err != nil {
		h.fail(c, err, "Failed to queue playlist export")
		return
	}

	httputil.SuccessMessage(c, http.StatusCreated, "your export request is being processed", nil)
}
