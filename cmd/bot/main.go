package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-budget-bot/internal/api"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/scheduler"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/commanding"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/reporting"
	"github.com/vfg2006/campaign-budget-bot/pkg/log"
)

func main() {
	// Formato dos logs antes mesmo de ler a configuração
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tiktokClient := tiktokclient.NewClient(cfg)
	tiktokIntegrator := tiktok.New(cfg, tiktokClient)

	telegramClient := telegramclient.NewClient(cfg)
	notifier := telegram.New(cfg, telegramClient)

	reportingService := reporting.NewService(cfg, tiktokIntegrator)
	budgetPlanner := budgeting.NewService()

	commandRouter := commanding.NewRouter(cfg, notifier, reportingService, tiktokIntegrator, budgetPlanner)

	registerCtx, registerCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := notifier.RegisterWebhook(registerCtx); err != nil {
		logrus.WithError(err).Error("Erro ao registrar o webhook do Telegram")
	}
	registerCancel()

	dailyReportService := scheduler.NewDailyReportService(reportingService, notifier, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	}

	server, err := api.New(cfg, commandRouter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
