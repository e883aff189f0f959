package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yogeshwar16/realestatehousing/internal/usecases"
	"github.com/yogeshwar16/realestatehousing/pkg/logger"
)

// InquiryExpiryJob periodically sweeps overdue inquiries to EXPIRED
type InquiryExpiryJob struct {
	inquiryUsecase *usecases.InquiryUsecase
	interval       time.Duration
	stop           chan struct{}
}

func NewInquiryExpiryJob(inquiryUsecase *usecases.InquiryUsecase, interval time.Duration) *InquiryExpiryJob {
	return &InquiryExpiryJob{
		inquiryUsecase: inquiryUsecase,
		interval:       interval,
		stop:           make(chan struct{}),
	}
}

func (j *InquiryExpiryJob) Start(ctx context.Context) {
	logger.WithContext(ctx).Info("starting inquiry expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WithContext(ctx).Info("inquiry expiry job stopped")
			return
		case <-j.stop:
			logger.WithContext(ctx).Info("inquiry expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *InquiryExpiryJob) Stop() {
	close(j.stop)
}

func (j *InquiryExpiryJob) sweep(ctx context.Context) {
	swept, err := j.inquiryUsecase.ExpireOverdue(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("inquiry expiry sweep failed", zap.Error(err))
		return
	}
	if swept > 0 {
		logger.WithContext(ctx).Info("expired overdue inquiries", zap.Int("count", swept))
	}
}
