package provider

import (
	"github.com/volunhub/internal/cache"
	"github.com/volunhub/internal/config"
	"github.com/volunhub/internal/logger"
	"github.com/volunhub/internal/models"
	"github.com/volunhub/internal/queue"
	"github.com/volunhub/internal/repository"
	"github.com/volunhub/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	ApplicantRepo repository.ApplicantRepository

	// Services
	AuthService      *service.AuthService
	ApplicantService *service.ApplicantService
	EmailService     *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ApplicantRepo = repository.NewApplicantRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ApplicantService = service.NewApplicantService(c.ApplicantRepo, c.QueueClient)
	c.EmailService = service.NewEmailService(&c.Config.Email)
}

// Close 释放容器持有的资源
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
