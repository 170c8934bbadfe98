package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/volunhub/internal/http/response"
	"github.com/volunhub/internal/repository"
	"github.com/volunhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetApplicants 获取申请列表 (Admin)
func (h *Handler) GetApplicants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ApplicantListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Interest: c.Query("interest"),
	}

	if raw := strings.TrimSpace(c.Query("reviewed")); raw != "" {
		reviewed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "reviewed 参数必须为 true 或 false", nil)
			return
		}
		filter.Reviewed = &reviewed
	}

	applicants, total, err := h.ApplicantService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "获取申请列表失败", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, applicants, pagination)
}

// GetApplicant 获取申请详情 (Admin)
func (h *Handler) GetApplicant(c *gin.Context) {
	id, ok := parseApplicantID(c)
	if !ok {
		return
	}

	applicant, err := h.ApplicantService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "申请不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取申请详情失败", err)
		return
	}
	response.Success(c, applicant)
}

// ToggleApplicantReview 翻转申请审核状态 (Admin)
func (h *Handler) ToggleApplicantReview(c *gin.Context) {
	id, ok := parseApplicantID(c)
	if !ok {
		return
	}

	applicant, err := h.ApplicantService.ToggleReviewed(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "申请不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "更新审核状态失败", err)
		return
	}
	response.Success(c, applicant)
}

// GetApplicantStats 申请统计 (Admin)
func (h *Handler) GetApplicantStats(c *gin.Context) {
	stats, err := h.ApplicantService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "获取申请统计失败", err)
		return
	}
	response.Success(c, stats)
}

func parseApplicantID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "无效的申请 ID", nil)
		return 0, false
	}
	return uint(id), true
}
