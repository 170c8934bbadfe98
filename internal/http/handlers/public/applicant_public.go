package public

import (
	"errors"

	"github.com/volunhub/internal/http/response"
	"github.com/volunhub/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateApplicantRequest 提交志愿申请请求
type CreateApplicantRequest struct {
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Bio          string   `json:"bio"`
}

// CreateApplicant 提交志愿申请（公开接口）
func (h *Handler) CreateApplicant(c *gin.Context) {
	var req CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	applicant, err := h.ApplicantService.Create(c.Request.Context(), service.ApplicantInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Interests:    req.Interests,
		Availability: req.Availability,
		Bio:          req.Bio,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithData(c, response.CodeBadRequest, "提交内容校验失败", gin.H{
				"errors": verr.Fields,
			})
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			respondError(c, response.CodeConflict, "该邮箱已提交过申请", nil)
			return
		}
		respondError(c, response.CodeInternal, "提交申请失败", err)
		return
	}

	response.Created(c, applicant)
}
