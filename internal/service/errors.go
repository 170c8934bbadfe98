package service

import "errors"

// 服务层哨兵错误，处理器通过 errors.Is/As 匹配并映射为 HTTP 响应
var (
	ErrNotFound                  = errors.New("记录不存在")
	ErrInvalidCredentials        = errors.New("邮箱或密码错误")
	ErrEmailExists               = errors.New("邮箱已存在")
	ErrRegistrationClosed        = errors.New("管理员注册已关闭")
	ErrWeakPassword              = errors.New("密码强度不足")
	ErrInvalidEmail              = errors.New("邮箱格式无效")
	ErrValidationFailed          = errors.New("表单校验失败")
	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 聚合所有字段错误的校验失败结果
// 一次提交的全部问题一起返回，便于前端整体修正。
type ValidationError struct {
	Fields []FieldError
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

// Is 支持 errors.Is(err, ErrValidationFailed)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
