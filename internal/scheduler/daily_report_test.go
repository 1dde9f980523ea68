package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
	commandingmocks "github.com/vfg2006/campaign-budget-bot/internal/usecases/commanding/mocks"
	reportingmocks "github.com/vfg2006/campaign-budget-bot/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newDailyReportConfig(enabled bool, chatID int64) *config.Config {
	cfg := &config.Config{}
	cfg.DailyReport.Enabled = enabled
	cfg.DailyReport.ChatID = chatID
	cfg.DailyReport.CronSchedule = "0 21 * * *"
	cfg.TikTok.Location = time.UTC
	return cfg
}

func TestDailyReportService_sendDailyReport(t *testing.T) {
	t.Run("envia o relatório formatado para o chat configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)
		notifier := commandingmocks.NewMockNotifier(ctrl)

		reporter.EXPECT().FetchToday(gomock.Any()).Return(&domain.DailyReport{
			Snapshot: domain.Snapshot{Cost: 100000, Orders: 2, Gross: 300000},
			Budget:   domain.BudgetState{CurrentBudget: 200000},
		}, nil)
		notifier.EXPECT().
			Send(gomock.Any(), int64(777), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, text string) error {
				assert.Contains(t, text, "CPO: `Rp 50.000`")
				assert.Contains(t, text, "ROI: `300,00%`")
				return nil
			})

		service := NewDailyReportService(reporter, notifier, newDailyReportConfig(true, 777))
		service.sendDailyReport(context.Background())

		assert.False(t, service.running)
	})

	t.Run("falha na leitura envia aviso de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)
		notifier := commandingmocks.NewMockNotifier(ctrl)

		reporter.EXPECT().FetchToday(gomock.Any()).Return(nil, errors.New("access_token expired"))
		notifier.EXPECT().
			Send(gomock.Any(), int64(777), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, text string) error {
				assert.Contains(t, text, "access\\_token expired")
				return nil
			})

		service := NewDailyReportService(reporter, notifier, newDailyReportConfig(true, 777))
		service.sendDailyReport(context.Background())
	})

	t.Run("execução em andamento é ignorada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)
		notifier := commandingmocks.NewMockNotifier(ctrl)

		service := NewDailyReportService(reporter, notifier, newDailyReportConfig(true, 777))
		service.running = true

		service.sendDailyReport(context.Background())

		assert.True(t, service.running)
	})
}

func TestDailyReportService_Start(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyReportService(
			reportingmocks.NewMockReporter(ctrl),
			commandingmocks.NewMockNotifier(ctrl),
			newDailyReportConfig(false, 0),
		)

		require.NoError(t, service.Start(context.Background()))
		assert.False(t, service.scheduler.IsRunning())
	})

	t.Run("habilitado sem chat é erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyReportService(
			reportingmocks.NewMockReporter(ctrl),
			commandingmocks.NewMockNotifier(ctrl),
			newDailyReportConfig(true, 0),
		)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("cron inválido é erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := newDailyReportConfig(true, 777)
		cfg.DailyReport.CronSchedule = "todo dia"

		service := NewDailyReportService(
			reportingmocks.NewMockReporter(ctrl),
			commandingmocks.NewMockNotifier(ctrl),
			cfg,
		)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para quando o contexto é cancelado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyReportService(
			reportingmocks.NewMockReporter(ctrl),
			commandingmocks.NewMockNotifier(ctrl),
			newDailyReportConfig(true, 777),
		)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
