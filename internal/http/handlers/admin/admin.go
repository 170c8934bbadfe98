package admin

import (
	"errors"
	"time"

	"github.com/volunhub/internal/http/response"
	"github.com/volunhub/internal/models"
	"github.com/volunhub/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	SetupToken string `json:"setup_token"`
}

// AuthResponse 登录/注册响应
type AuthResponse struct {
	Token     string                 `json:"token"`
	Admin     map[string]interface{} `json:"admin"`
	ExpiresAt string                 `json:"expires_at"`
}

func buildAuthResponse(admin *models.Admin, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		Token: token,
		Admin: map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "邮箱或密码错误", nil)
			return
		}
		respondError(c, response.CodeInternal, "登录失败", err)
		return
	}
	response.Success(c, buildAuthResponse(admin, token, expiresAt))
}

// AdminRegister 管理员注册
func (h *Handler) AdminRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Register(req.Email, req.Password, req.SetupToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationClosed):
			respondError(c, response.CodeForbidden, "注册已关闭", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "该邮箱已被注册", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "邮箱格式不正确", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "注册失败", err)
		}
		return
	}
	response.Created(c, buildAuthResponse(admin, token, expiresAt))
}

// GetAdminProfile 获取当前管理员信息
func (h *Handler) GetAdminProfile(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	admin, err := h.AuthService.GetProfile(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "管理员不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取管理员信息失败", err)
		return
	}

	profile := gin.H{
		"id":         admin.ID,
		"email":      admin.Email,
		"created_at": admin.CreatedAt,
	}
	if admin.LastLoginAt != nil {
		profile["last_login_at"] = admin.LastLoginAt
	}
	response.Success(c, profile)
}
