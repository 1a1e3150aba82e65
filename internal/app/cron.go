package app

import (
	"context"
	"fmt"
	"time"

	"github.com/maison-lumiere/atelier/internal/modules/newsletter/campaign"
	"github.com/maison-lumiere/atelier/internal/modules/newsletter/subscriber"
	pkgcron "github.com/maison-lumiere/atelier/internal/pkg/cron"
	"github.com/maison-lumiere/atelier/internal/pkg/mail"
	pkgredis "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"go.uber.org/zap"
)

const unverifiedMaxAge = 72 * time.Hour

// registerCronJobs registers all scheduled background jobs.
func (a *App) registerCronJobs(rc *pkgredis.Client) {
	cronLogger := a.logger.Named("CronService")

	sender := mail.New(mailConfig(a.cfg))
	subsSvc := subscriber.NewService(a.db, rc)
	campaignSvc := campaign.NewService(a.db, subsSvc, sender, a.cfg, a.logger)

	a.sched.Register(pkgcron.Job{
		Name:        "send_due_campaigns",
		Description: "예약 시각이 지난 뉴스레터 발송",
		Interval:    time.Minute,
		Fn: func(ctx context.Context) error {
			if err := campaignSvc.SendDue(ctx); err != nil {
				cronLogger.Warn("예약 뉴스레터 발송 실패", zap.Error(err))
				return err
			}
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "cleanup_unverified",
		Description: "72시간 이상 미인증 구독자 정리",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			deleted, err := subsSvc.CleanupUnverified(unverifiedMaxAge)
			if err != nil {
				cronLogger.Warn("미인증 구독자 정리 실패", zap.Error(err))
				return err
			}
			if deleted > 0 {
				cronLogger.Info(fmt.Sprintf("미인증 구독자 정리 완료, 총 %d건 삭제", deleted))
			}
			return nil
		},
	})
}
