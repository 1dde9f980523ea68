package commanding

import (
	"fmt"

	"github.com/vfg2006/campaign-budget-bot/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-budget-bot/pkg/utils"
)

// Limite do texto de erro repassado ao chat
const maxErrorLength = 500

const (
	CommandStart     = "/start"
	CommandHelp      = "/help"
	CommandStatus    = "/status"
	CommandSetBudget = "/setbudget"
	CommandBudget    = "/budget"
)

const commandList = "Perintah yang tersedia:\n" +
	"/status - laporan hari ini (biaya, pesanan, GMV, CPO, ROI, budget)\n" +
	"/setbudget <nominal> - ubah budget harian, contoh: `/setbudget 200rb`, `/setbudget 1.5jt`\n" +
	"/help - tampilkan bantuan ini"

const (
	msgGreeting      = "👋 Halo! Saya bot budget kampanye.\n\n" + commandList
	msgNotAllowed    = "⛔ Maaf, kamu tidak memiliki akses ke bot ini."
	msgUnknown       = "🤔 Perintah tidak dikenal.\n\n" + commandList
	msgWorking       = "⏳ Sedang mengambil data..."
	msgBudgetUsage   = "ℹ️ Cara pakai: `/setbudget <nominal>`\nContoh: `/setbudget 150000`, `/setbudget 200rb`, `/setbudget 1.5jt`"
	msgInvalidAmount = "⚠️ Nominal tidak valid. Contoh yang diterima: `150000`, `Rp 150.000`, `200rb`, `1.5jt`"
	msgNonPositive   = "⚠️ Nominal harus lebih besar dari nol."
)

func decreaseNotice(current float64, desired int64) string {
	return fmt.Sprintf("🚫 Budget tidak boleh diturunkan di hari yang sama.\nBudget saat ini: `%s`, diminta: `%s`",
		utils.FormatRupiah(current), utils.FormatRupiah(float64(desired)))
}

func raiseNotice(plan *budgeting.BudgetPlan) string {
	return fmt.Sprintf("📈 Budget minimal adalah 105%% dari biaya hari ini (`%s`).\nNominal dinaikkan dari `%s` menjadi `%s`.",
		utils.FormatRupiah(plan.SpendToday), utils.FormatRupiah(float64(plan.Desired)), utils.FormatRupiah(float64(plan.Effective)))
}

func applyingNotice(amount int64) string {
	return fmt.Sprintf("⚙️ Menerapkan budget harian `%s`...", utils.FormatRupiah(float64(amount)))
}

func successNotice(amount int64) string {
	return fmt.Sprintf("✅ Budget harian berhasil diubah menjadi `%s`.", utils.FormatRupiah(float64(amount)))
}

// errorNotice leva a referência que também vai para o log
func errorNotice(ref string, err error) string {
	detail := utils.SanitizeMarkdown(utils.Truncate(err.Error(), maxErrorLength))
	return fmt.Sprintf("❌ Terjadi kesalahan (ref `%s`):\n%s", ref, detail)
}
