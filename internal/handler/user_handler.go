package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

// RegisterUser 注册新用户
// POST /users
func (h *Handler) RegisterUser(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	id, err := h.userService.Register(c.Request.Context(), payload.Username, payload.Password, payload.Fullname)
	if err != nil {
		h.fail(c, err, "Failed to register user")
		return
	}

	httputil.Success(c, http.StatusCreated, gin.H{"userId": id})
}

// GetUser 获取用户公开信息
// GET /users/:id
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to get user")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"user": user})
}
