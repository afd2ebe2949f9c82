package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/internal/middleware"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

// AddCollaboration 给播放列表添加协作者，仅所有者可操作
// POST /collaborations
func (h *Handler) AddCollaboration(c *gin.Context) {
	var payload collaborationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	id, err := h.collabService.Add(c.Request.Context(), payload.PlaylistID, middleware.UserID(c), payload.UserID)
	if err != nil {
		h.fail(c, err, "Failed to add collaborator")
		return
	}

	httputil.Success(c, http.StatusCreated, gin.H{"collaborationId": id})
}

// RemoveCollaboration 移除播放列表协作者
// DELETE /collaborations
func (h *Handler) RemoveCollaboration(c *gin.Context) {
	var payload collaborationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	err := h.collabService.Remove(c.Request.Context(), payload.PlaylistID, middleware.UserID(c), payload.UserID)
	if err != nil {
		h.fail(c, err, "Failed to remove collaborator")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "collaborator removed", nil)
}
