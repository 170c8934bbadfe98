package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/volunhub/internal/logger"
	"github.com/volunhub/internal/provider"
	"github.com/volunhub/internal/queue"
	"github.com/volunhub/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskApplicantSubmitted, c.handleApplicantSubmitted)
}

func (c *Consumer) handleApplicantSubmitted(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_applicant_submitted_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ApplicantSubmittedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_applicant_submitted_unmarshal_failed", "error", err)
		return err
	}
	if payload.ApplicantID == 0 {
		logger.Debugw("worker_applicant_submitted_skip_invalid_payload", "applicant_id", payload.ApplicantID)
		return nil
	}
	applicant, err := c.ApplicantRepo.GetByID(payload.ApplicantID)
	if err != nil {
		logger.Warnw("worker_applicant_submitted_fetch_failed", "applicant_id", payload.ApplicantID, "error", err)
		return err
	}
	if applicant == nil {
		logger.Debugw("worker_applicant_submitted_skip_not_found", "applicant_id", payload.ApplicantID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_applicant_submitted_skip_email_service_nil", "applicant_id", applicant.ID)
		return nil
	}
	if err := c.EmailService.SendApplicantNotification(applicant); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_applicant_submitted_skip_email_disabled", "applicant_id", applicant.ID)
			return nil
		}
		logger.Warnw("worker_applicant_submitted_send_failed", "applicant_id", applicant.ID, "error", err)
		return err
	}
	logger.Infow("worker_applicant_submitted_notified", "applicant_id", applicant.ID)
	return nil
}
