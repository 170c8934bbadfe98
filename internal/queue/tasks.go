package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskApplicantSubmitted 申请提交成功后触发的通知任务
const TaskApplicantSubmitted = "applicant:submitted"

// ApplicantSubmittedPayload 申请提交任务负载
type ApplicantSubmittedPayload struct {
	ApplicantID uint `json:"applicant_id"`
}

// NewApplicantSubmittedTask 构造申请提交任务
func NewApplicantSubmittedTask(applicantID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ApplicantSubmittedPayload{ApplicantID: applicantID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskApplicantSubmitted, payload), nil
}
