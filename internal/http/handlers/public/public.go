package public

import (
	"github.com/volunhub/internal/constants"
	"github.com/volunhub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
	})
}

// APIIndex 服务信息
func (h *Handler) APIIndex(c *gin.Context) {
	response.Success(c, gin.H{
		"name":           "VolunHub API",
		"interests":      constants.Interests,
		"availabilities": constants.Availabilities,
	})
}
