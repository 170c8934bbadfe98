package repository

import (
	"errors"
	"strings"

	"github.com/volunhub/internal/models"

	"gorm.io/gorm"
)

// ApplicantStats 申请统计结果
type ApplicantStats struct {
	Total      int64            `json:"total"`
	Reviewed   int64            `json:"reviewed"`
	Unreviewed int64            `json:"unreviewed"`
	ByInterest map[string]int64 `json:"by_interest"`
}

// ApplicantRepository 志愿者申请数据访问接口
type ApplicantRepository interface {
	Create(applicant *models.Applicant) error
	GetByID(id uint) (*models.Applicant, error)
	GetByEmail(email string) (*models.Applicant, error)
	List(filter ApplicantListFilter) ([]models.Applicant, int64, error)
	ToggleReviewed(id uint) (*models.Applicant, error)
	CountByReviewed() (total, reviewed int64, err error)
	CountByInterest(interest string) (int64, error)
}

// GormApplicantRepository GORM 实现
type GormApplicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository 创建申请仓库
func NewApplicantRepository(db *gorm.DB) *GormApplicantRepository {
	return &GormApplicantRepository{db: db}
}

// Create 创建申请
func (r *GormApplicantRepository) Create(applicant *models.Applicant) error {
	return r.db.Create(applicant).Error
}

// GetByID 根据 ID 获取申请
func (r *GormApplicantRepository) GetByID(id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.First(&applicant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &applicant, nil
}

// GetByEmail 根据邮箱获取申请
func (r *GormApplicantRepository) GetByEmail(email string) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.Where("email = ?", email).First(&applicant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &applicant, nil
}

// List 按过滤条件查询申请列表，提交时间倒序
func (r *GormApplicantRepository) List(filter ApplicantListFilter) ([]models.Applicant, int64, error) {
	query := r.applyFilter(r.db.Model(&models.Applicant{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	applicants := make([]models.Applicant, 0)
	if err := query.Order("created_at DESC").Find(&applicants).Error; err != nil {
		return nil, 0, err
	}
	return applicants, total, nil
}

// ToggleReviewed 原子翻转审核状态并返回最新记录；记录不存在时返回 (nil, nil)
// 取反直接下推到一条 UPDATE，同一记录上的并发切换由数据库串行化。
func (r *GormApplicantRepository) ToggleReviewed(id uint) (*models.Applicant, error) {
	result := r.db.Model(&models.Applicant{}).
		Where("id = ?", id).
		UpdateColumn("reviewed", gorm.Expr("NOT reviewed"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// CountByReviewed 统计申请总数与已审核数
func (r *GormApplicantRepository) CountByReviewed() (int64, int64, error) {
	var total int64
	if err := r.db.Model(&models.Applicant{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var reviewed int64
	if err := r.db.Model(&models.Applicant{}).Where("reviewed = ?", true).Count(&reviewed).Error; err != nil {
		return 0, 0, err
	}
	return total, reviewed, nil
}

// CountByInterest 统计包含指定志愿方向的申请数
func (r *GormApplicantRepository) CountByInterest(interest string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Applicant{}).
		Where(`CAST(interests AS TEXT) LIKE ? ESCAPE '\'`, interestPattern(interest)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormApplicantRepository) applyFilter(query *gorm.DB, filter ApplicantListFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Interest != "" {
		query = query.Where(`CAST(interests AS TEXT) LIKE ? ESCAPE '\'`, interestPattern(filter.Interest))
	}
	if filter.Reviewed != nil {
		query = query.Where("reviewed = ?", *filter.Reviewed)
	}
	return query
}

// interestPattern 生成 JSON 数组成员匹配的 LIKE 模式；转义 LIKE 元字符防止误匹配
func interestPattern(interest string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(interest)
	return `%"` + escaped + `"%`
}
