package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-budget-bot/internal/domain"
	"github.com/vfg2006/campaign-budget-bot/pkg/utils"
)

// FormatReport monta a mensagem única com métricas e orçamento, em Markdown do Telegram
func FormatReport(report *domain.DailyReport) string {
	s := report.Snapshot

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Laporan Hari Ini* (%s)\n\n", s.Date.Format(time.DateOnly))
	fmt.Fprintf(&b, "Biaya: `%s`\n", utils.FormatRupiah(s.Cost))
	fmt.Fprintf(&b, "Pesanan: `%s`\n", utils.FormatInt(s.Orders))
	fmt.Fprintf(&b, "GMV: `%s`\n", utils.FormatRupiah(s.Gross))
	fmt.Fprintf(&b, "CPO: `%s`\n", utils.FormatRupiah(s.CPO()))
	fmt.Fprintf(&b, "ROI: `%s`\n\n", utils.FormatPercent(s.ROI()))
	fmt.Fprintf(&b, "💰 Budget harian: `%s`", utils.FormatRupiah(report.Budget.CurrentBudget))

	return b.String()
}
