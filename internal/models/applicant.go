package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringArray 字符串数组类型，以 JSON 形式落库
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return nil
	}
}

// Contains 判断数组是否包含指定元素
func (s StringArray) Contains(item string) bool {
	for _, candidate := range s {
		if candidate == item {
			return true
		}
	}
	return false
}

// Applicant 志愿者申请表
// 创建后仅 Reviewed 字段可变，且只能通过审核切换接口修改。
type Applicant struct {
	ID           uint        `gorm:"primarykey" json:"id"`                          // 主键
	FullName     string      `gorm:"type:varchar(100);not null" json:"full_name"`   // 姓名
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`             // 邮箱（统一存储小写）
	Phone        string      `gorm:"type:varchar(20)" json:"phone"`                 // 电话（可选）
	Interests    StringArray `gorm:"type:json;not null" json:"interests"`           // 志愿方向集合
	Availability string      `gorm:"type:varchar(20);not null" json:"availability"` // 可用时间
	Bio          string      `gorm:"type:varchar(300)" json:"bio"`                  // 自我介绍（可选）
	Reviewed     bool        `gorm:"not null;default:false;index" json:"reviewed"`  // 是否已审核
	CreatedAt    time.Time   `gorm:"index" json:"created_at"`                       // 提交时间（不可变）
}

// TableName 指定表名
func (Applicant) TableName() string {
	return "applicants"
}
