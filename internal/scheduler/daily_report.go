package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/commanding"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/reporting"
	"github.com/vfg2006/campaign-budget-bot/pkg/utils"
)

// DailyReportConfig representa a configuração do envio automático do relatório
type DailyReportConfig struct {
	CronSchedule string
	ChatID       int64
	Enabled      bool
}

// DailyReportService envia o mesmo relatório do /status para um chat fixo, no horário configurado
type DailyReportService struct {
	scheduler *gocron.Scheduler
	config    DailyReportConfig
	reporter  reporting.Reporter
	notifier  commanding.Notifier
	running   bool
	mutex     sync.Mutex
}

func NewDailyReportService(
	reporter reporting.Reporter,
	notifier commanding.Notifier,
	appConfig *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		ChatID:       appConfig.DailyReport.ChatID,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	// O horário do cron segue o fuso da conta de anúncios
	location := appConfig.TikTok.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"chat_id":       reportConfig.ChatID,
		"enabled":       reportConfig.Enabled,
		"timezone":      location.String(),
	}).Info("Configuração do relatório diário carregada")

	return &DailyReportService{
		scheduler: gocron.NewScheduler(location),
		config:    reportConfig,
		reporter:  reporter,
		notifier:  notifier,
	}
}

// Start agenda o relatório e para o agendador quando ctx for cancelado
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário desabilitado por configuração")
		return nil
	}

	if s.config.ChatID == 0 {
		return fmt.Errorf("relatório diário habilitado sem DAILY_REPORT_CHAT_ID")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sendDailyReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailyReportService) sendDailyReport(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.mutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	logger := logrus.WithField("chat_id", s.config.ChatID)

	var text string
	report, err := s.reporter.FetchToday(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar dados do relatório diário")
		text = "❌ Laporan harian gagal diambil: " + utils.SanitizeMarkdown(utils.Truncate(err.Error(), 500))
	} else {
		text = reporting.FormatReport(report)
	}

	if err := s.notifier.Send(ctx, s.config.ChatID, text); err != nil {
		logger.WithError(err).Error("Erro ao enviar relatório diário")
		return
	}

	logger.WithField("duration", time.Since(startTime).String()).Info("Relatório diário enviado")
}
