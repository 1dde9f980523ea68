package utils

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatRupiah formata um valor inteiro com separador de milhar indonésio: "Rp 1.500.000"
func FormatRupiah(v float64) string {
	return "Rp " + idPrinter.Sprintf("%d", int64(math.Round(v)))
}

// FormatPercent formata com duas casas usando vírgula decimal: "123,45%"
func FormatPercent(v float64) string {
	return idPrinter.Sprintf("%.2f", RoundWithTwoDecimalPlace(v)) + "%"
}

// FormatInt formata contagens com separador de milhar
func FormatInt(v int64) string {
	return idPrinter.Sprintf("%d", v)
}

// Truncate corta s em no máximo max runas, sem quebrar caracteres multibyte
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}

// SanitizeMarkdown escapa os caracteres de marcação do parse_mode Markdown do Telegram
// quando o texto vem de fora (mensagens de erro da API, entrada do usuário)
func SanitizeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")
