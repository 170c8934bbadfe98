package router

import (
	"fmt"
	"strings"

	"github.com/volunhub/internal/cache"
	"github.com/volunhub/internal/config"
	adminhandlers "github.com/volunhub/internal/http/handlers/admin"
	publichandlers "github.com/volunhub/internal/http/handlers/public"
	"github.com/volunhub/internal/logger"
	"github.com/volunhub/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按公开/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vh"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "登录尝试过于频繁",
	}
	submitRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:applicant_submit", redisPrefix),
		WindowSeconds: cfg.Security.SubmitRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SubmitRateLimit.MaxAttempts,
		Message:       "提交过于频繁",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 服务信息与健康检查
	r.GET("/", publicHandler.APIIndex)

	api := r.Group("/api")
	{
		api.GET("/health", publicHandler.Health)

		// 公开申请入口
		api.POST("/applicants",
			RateLimitMiddleware(redisClient, submitRule, KeyByIPAndJSONField("email")),
			publicHandler.CreateApplicant,
		)

		// 管理员认证
		adminGroup := api.Group("/admin")
		{
			adminGroup.POST("/login",
				RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")),
				adminHandler.AdminLogin,
			)
			adminGroup.POST("/register", adminHandler.AdminRegister)
		}

		// 需要登录的接口
		authorized := api.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey))
		{
			authorized.GET("/admin/profile", adminHandler.GetAdminProfile)
			authorized.GET("/admin/stats", adminHandler.GetApplicantStats)
			authorized.GET("/applicants", adminHandler.GetApplicants)
			authorized.GET("/applicants/:id", adminHandler.GetApplicant)
			authorized.PUT("/applicants/:id/review", adminHandler.ToggleApplicantReview)
		}
	}

	return r
}
