package commanding

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/access"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-budget-bot/internal/usecases/reporting"
	"github.com/vfg2006/campaign-budget-bot/pkg/log"
	"github.com/vfg2006/campaign-budget-bot/pkg/utils"
)

// Router autoriza o remetente e despacha o comando para o handler correspondente.
// Não guarda estado entre mensagens.
type Router struct {
	cfg      *config.Config
	notifier Notifier
	reporter reporting.Reporter
	platform reporting.AdPlatform
	planner  budgeting.Planner
}

func NewRouter(
	cfg *config.Config,
	notifier Notifier,
	reporter reporting.Reporter,
	platform reporting.AdPlatform,
	planner budgeting.Planner,
) *Router {
	return &Router{
		cfg:      cfg,
		notifier: notifier,
		reporter: reporter,
		platform: platform,
		planner:  planner,
	}
}

func (r *Router) Handle(ctx context.Context, msg domain.IncomingMessage) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"chat_id": msg.ChatID,
		"user_id": msg.UserID,
	})

	userID := strconv.FormatInt(msg.UserID, 10)
	if !access.AuthorizeUser(userID, r.cfg.Telegram.AdminUserID, r.cfg.Telegram.AllowedUserIDs) {
		logger.Warn("Usuário não autorizado")
		r.send(ctx, msg.ChatID, msgNotAllowed)
		return
	}

	cmd := domain.ParseCommand(msg.Text)
	logger.WithField("command", cmd.Name).Info("Comando recebido")

	switch cmd.Name {
	case CommandStart, CommandHelp:
		r.send(ctx, msg.ChatID, msgGreeting)
	case CommandStatus:
		r.handleStatus(ctx, msg.ChatID)
	case CommandSetBudget, CommandBudget:
		r.handleSetBudget(ctx, msg.ChatID, cmd.Args)
	default:
		r.send(ctx, msg.ChatID, msgUnknown)
	}
}

func (r *Router) handleStatus(ctx context.Context, chatID int64) {
	r.send(ctx, chatID, msgWorking)

	report, err := r.reporter.FetchToday(ctx)
	if err != nil {
		r.sendError(ctx, chatID, "status", err)
		return
	}

	r.send(ctx, chatID, reporting.FormatReport(report))
}

func (r *Router) handleSetBudget(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		r.send(ctx, chatID, msgBudgetUsage)
		return
	}

	// "Rp 150.000" chega como dois argumentos
	desired, err := budgeting.ParseAmount(strings.Join(args, " "))
	if err != nil {
		r.send(ctx, chatID, msgInvalidAmount)
		return
	}

	if desired <= 0 {
		r.send(ctx, chatID, msgNonPositive)
		return
	}

	report, err := r.reporter.FetchToday(ctx)
	if err != nil {
		r.sendError(ctx, chatID, "setbudget", err)
		return
	}

	plan, err := r.planner.Plan(desired, report)
	switch {
	case errors.Is(err, budgeting.ErrBudgetDecrease):
		r.send(ctx, chatID, decreaseNotice(report.Budget.CurrentBudget, desired))
		return
	case errors.Is(err, budgeting.ErrNonPositiveAmount):
		r.send(ctx, chatID, msgNonPositive)
		return
	case err != nil:
		r.sendError(ctx, chatID, "setbudget", err)
		return
	}

	if plan.Raised {
		r.send(ctx, chatID, raiseNotice(plan))
	}

	r.send(ctx, chatID, applyingNotice(plan.Effective))

	if err := r.platform.UpdateDailyBudget(ctx, plan.Effective); err != nil {
		r.sendError(ctx, chatID, "setbudget", err)
		return
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"chat_id":     chatID,
		"desired":     plan.Desired,
		"effective":   plan.Effective,
		"previous":    plan.Current,
		"spend_today": plan.SpendToday,
	}).Info("Orçamento diário atualizado")

	r.send(ctx, chatID, successNotice(plan.Effective))
}

// send é best effort: falha de envio só vai para o log
func (r *Router) send(ctx context.Context, chatID int64, text string) {
	if err := r.notifier.Send(ctx, chatID, text); err != nil {
		log.ForContext(ctx).WithError(err).WithField("chat_id", chatID).Error("Falha ao enviar mensagem")
	}
}

func (r *Router) sendError(ctx context.Context, chatID int64, command string, cause error) {
	ref, err := utils.GenerateID()
	if err != nil {
		ref = "-"
	}

	log.ForContext(ctx).WithError(cause).WithFields(log.Fields{
		"chat_id": chatID,
		"command": command,
		"ref":     ref,
	}).Error("Falha ao processar comando")

	r.send(ctx, chatID, errorNotice(ref, cause))
}
