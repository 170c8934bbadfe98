package main

import (
	"github.com/volunhub/internal/config"
	"github.com/volunhub/internal/constants"
	"github.com/volunhub/internal/logger"
	"github.com/volunhub/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加演示管理员
	adminEmail := "admin@volunhub.local"
	var existingAdmin models.Admin
	if err := models.DB.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("Admin123456"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := models.Admin{Email: adminEmail, PasswordHash: string(hash)}
		if err := models.DB.Create(&admin).Error; err != nil {
			stdLog.Printf("Failed to create admin %s: %v", adminEmail, err)
		} else {
			stdLog.Printf("Created admin: %s", adminEmail)
		}
	} else {
		stdLog.Printf("Admin already exists: %s", adminEmail)
	}

	// 添加演示申请
	applicants := []models.Applicant{
		{
			FullName:     "林晓雨",
			Email:        "xiaoyu.lin@example.com",
			Phone:        "+86 138 0000 0001",
			Interests:    models.StringArray{constants.InterestEducation, constants.InterestCommunityService},
			Availability: constants.AvailabilityWeekends,
			Bio:          "师范院校在读，周末可以参与社区课业辅导。",
		},
		{
			FullName:     "Marco Alvarez",
			Email:        "marco.alvarez@example.com",
			Phone:        "+34 600 000 002",
			Interests:    models.StringArray{constants.InterestTech},
			Availability: constants.AvailabilityPartTime,
			Bio:          "Backend developer, happy to help maintain community tooling.",
		},
		{
			FullName:     "王志强",
			Email:        "zhiqiang.wang@example.com",
			Phone:        "+86 139 0000 0003",
			Interests:    models.StringArray{constants.InterestHealthcare, constants.InterestOutreach},
			Availability: constants.AvailabilityFullTime,
			Bio:          "退休医生，希望参与义诊与健康宣传活动。",
			Reviewed:     true,
		},
	}

	for _, applicant := range applicants {
		var existing models.Applicant
		if err := models.DB.Where("email = ?", applicant.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&applicant).Error; err != nil {
				stdLog.Printf("Failed to create applicant %s: %v", applicant.Email, err)
			} else {
				stdLog.Printf("Created applicant: %s", applicant.Email)
			}
		} else {
			stdLog.Printf("Applicant already exists: %s", applicant.Email)
		}
	}

	stdLog.Printf("Seed completed")
}
