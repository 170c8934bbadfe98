package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volunhub/internal/cache"
	"github.com/volunhub/internal/constants"
	"github.com/volunhub/internal/logger"
	"github.com/volunhub/internal/models"
	"github.com/volunhub/internal/queue"
	"github.com/volunhub/internal/repository"

	"gorm.io/gorm"
)

const (
	statsCacheKey = "stats:applicants"
	statsCacheTTL = 60 * time.Second
)

// ApplicantService 申请服务
type ApplicantService struct {
	applicantRepo repository.ApplicantRepository
	queueClient   *queue.Client
}

// NewApplicantService 创建申请服务
func NewApplicantService(applicantRepo repository.ApplicantRepository, queueClient *queue.Client) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		queueClient:   queueClient,
	}
}

// Create 创建申请；校验失败返回 *ValidationError
func (s *ApplicantService) Create(ctx context.Context, input ApplicantInput) (*models.Applicant, error) {
	normalized, verr := validateApplicantInput(input)
	if verr != nil {
		return nil, verr
	}

	existing, err := s.applicantRepo.GetByEmail(normalized.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	applicant := &models.Applicant{
		FullName:     normalized.FullName,
		Email:        normalized.Email,
		Phone:        normalized.Phone,
		Interests:    models.StringArray(normalized.Interests),
		Availability: normalized.Availability,
		Bio:          normalized.Bio,
	}
	if err := s.applicantRepo.Create(applicant); err != nil {
		// 并发提交同一邮箱时靠唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.invalidateStats(ctx)

	if err := s.queueClient.EnqueueApplicantSubmitted(applicant.ID); err != nil {
		logger.Warnw("申请通知任务入队失败", "applicant_id", applicant.ID, "error", err)
	}

	return applicant, nil
}

// Get 获取申请详情
func (s *ApplicantService) Get(id uint) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrNotFound
	}
	return applicant, nil
}

// List 按筛选条件分页查询申请
func (s *ApplicantService) List(filter repository.ApplicantListFilter) ([]models.Applicant, int64, error) {
	return s.applicantRepo.List(filter)
}

// ToggleReviewed 原子翻转审核状态
func (s *ApplicantService) ToggleReviewed(ctx context.Context, id uint) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.ToggleReviewed(id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrNotFound
	}
	s.invalidateStats(ctx)
	return applicant, nil
}

// Stats 申请统计，带 Redis 缓存
func (s *ApplicantService) Stats(ctx context.Context) (*repository.ApplicantStats, error) {
	var cached repository.ApplicantStats
	hit, err := cache.GetJSON(ctx, statsCacheKey, &cached)
	if err != nil {
		logger.Warnw("读取申请统计缓存失败", "error", err)
	}
	if hit {
		return &cached, nil
	}

	total, reviewed, err := s.applicantRepo.CountByReviewed()
	if err != nil {
		return nil, err
	}
	stats := &repository.ApplicantStats{
		Total:      total,
		Reviewed:   reviewed,
		Unreviewed: total - reviewed,
		ByInterest: make(map[string]int64, len(constants.Interests)),
	}
	for _, interest := range constants.Interests {
		count, err := s.applicantRepo.CountByInterest(interest)
		if err != nil {
			return nil, err
		}
		stats.ByInterest[interest] = count
	}

	if err := cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		logger.Warnw("写入申请统计缓存失败", "error", err)
	}
	return stats, nil
}

func (s *ApplicantService) invalidateStats(ctx context.Context) {
	if err := cache.Del(ctx, statsCacheKey); err != nil {
		logger.Warnw("清理申请统计缓存失败", "error", err)
	}
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
