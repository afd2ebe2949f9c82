package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/httputil"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

// Login 登录并颁发令牌对
// POST /authentications
func (h *Handler) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		h.fail(c, err, "Failed to login")
		return
	}

	httputil.Success(c, http.StatusCreated, tokens)
}

// RefreshToken 刷新访问令牌
// PUT /authentications
func (h *Handler) RefreshToken(c *gin.Context) {
	var payload refreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), payload.RefreshToken)
	if err != nil {
		h.fail(c, err, "Failed to refresh token")
		return
	}

	httputil.Success(c, http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout 撤销刷新令牌
// DELETE /authentications
func (h *Handler) Logout(c *gin.Context) {
	var payload refreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httputil.Fail(c, errors.Validation("invalid request body"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), payload.RefreshToken); err != nil {
		h.fail(c, err, "Failed to logout")
		return
	}

	httputil.SuccessMessage(c, http.StatusOK, "refresh token deleted", nil)
}
