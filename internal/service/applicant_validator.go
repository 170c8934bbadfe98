package service

import (
	"strings"
	"unicode/utf8"

	"github.com/volunhub/internal/constants"
)

const (
	fullNameMaxLen = 100
	phoneMaxLen    = 20
	bioMaxLen      = 300
)

// ApplicantInput 志愿者申请提交内容
type ApplicantInput struct {
	FullName     string
	Email        string
	Phone        string
	Interests    []string
	Availability string
	Bio          string
}

// validateApplicantInput 校验申请内容并返回归一化结果
// 所有字段问题一次性收集，不在首个错误处中断。
func validateApplicantInput(input ApplicantInput) (ApplicantInput, *ValidationError) {
	var fields []FieldError

	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		fields = append(fields, FieldError{Field: "full_name", Message: "姓名不能为空"})
	} else if utf8.RuneCountInString(input.FullName) > fullNameMaxLen {
		fields = append(fields, FieldError{Field: "full_name", Message: "姓名不能超过 100 个字符"})
	}

	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "请输入有效的邮箱地址"})
	} else {
		input.Email = normalized
	}

	input.Phone = strings.TrimSpace(input.Phone)
	if utf8.RuneCountInString(input.Phone) > phoneMaxLen {
		fields = append(fields, FieldError{Field: "phone", Message: "电话不能超过 20 个字符"})
	}

	input.Interests = dedupeStrings(input.Interests)
	if len(input.Interests) == 0 {
		fields = append(fields, FieldError{Field: "interests", Message: "至少需要选择一个志愿方向"})
	} else {
		for _, interest := range input.Interests {
			if !constants.IsValidInterest(interest) {
				fields = append(fields, FieldError{Field: "interests", Message: "包含无效的志愿方向: " + interest})
			}
		}
	}

	if !constants.IsValidAvailability(strings.TrimSpace(input.Availability)) {
		fields = append(fields, FieldError{Field: "availability", Message: "请选择有效的可用时间"})
	} else {
		input.Availability = strings.TrimSpace(input.Availability)
	}

	input.Bio = strings.TrimSpace(input.Bio)
	if utf8.RuneCountInString(input.Bio) > bioMaxLen {
		fields = append(fields, FieldError{Field: "bio", Message: "自我介绍不能超过 300 个字符"})
	}

	if len(fields) > 0 {
		return input, &ValidationError{Fields: fields}
	}
	return input, nil
}

// dedupeStrings 去重并剔除空白项，保持原有顺序
func dedupeStrings(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
