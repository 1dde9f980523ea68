package budgeting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	digitsOnly       = regexp.MustCompile(`^\d+$`)
	intThousand      = regexp.MustCompile(`^(\d+)(k|rb)$`)
	intMillion       = regexp.MustCompile(`^(\d+)(jt|m)$`)
	decimalMillion   = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)(jt|m)$`)
	decimalThousand  = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)(k|rb)$`)
	thousandMultiple = decimal.NewFromInt(1_000)
	millionMultiple  = decimal.NewFromInt(1_000_000)
)

// ParseAmount converte um texto livre ("Rp 150.000", "200rb", "1.5jt") em um valor inteiro.
// Valores zero ou negativos são devolvidos normalmente: rejeitá-los é papel de quem chama.
func ParseAmount(input string) (int64, error) {
	s := normalizeAmount(input)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	if digitsOnly.MatchString(s) {
		return parseInt(s)
	}

	if m := intThousand.FindStringSubmatch(s); m != nil {
		return scaleInt(m[1], 1_000)
	}

	if m := intMillion.FindStringSubmatch(s); m != nil {
		return scaleInt(m[1], 1_000_000)
	}

	if m := decimalMillion.FindStringSubmatch(s); m != nil {
		return scaleDecimal(m[1], millionMultiple)
	}

	if m := decimalThousand.FindStringSubmatch(s); m != nil {
		return scaleDecimal(m[1], thousandMultiple)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidAmount
	}

	rounded := math.Round(f)
	if rounded >= math.MaxInt64 || rounded < math.MinInt64 {
		return 0, ErrInvalidAmount
	}

	return int64(rounded), nil
}

func normalizeAmount(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if rest, ok := strings.CutPrefix(s, "rp"); ok {
		// "Rp." é a abreviação usual da moeda
		s = strings.TrimPrefix(rest, ".")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	return stripThousandsDots(s)
}

// stripThousandsDots remove o ponto usado como separador de milhar ("1.500.000"),
// preservando o ponto decimal de "1.5jt"
func stripThousandsDots(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '.' && isThousandsDot(s, i) {
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isThousandsDot(s string, i int) bool {
	if i == 0 || !isDigit(s[i-1]) || i+3 >= len(s) {
		return false
	}

	for j := i + 1; j <= i+3; j++ {
		if !isDigit(s[j]) {
			return false
		}
	}

	return i+4 == len(s) || !isDigit(s[i+4])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return n, nil
}

func scaleInt(digits string, factor int64) (int64, error) {
	n, err := parseInt(digits)
	if err != nil {
		return 0, err
	}

	if n > math.MaxInt64/factor {
		return 0, ErrInvalidAmount
	}

	return n * factor, nil
}

func scaleDecimal(value string, factor decimal.Decimal) (int64, error) {
	d, err := decimal.NewFromString(strings.Replace(value, ",", ".", 1))
	if err != nil {
		return 0, ErrInvalidAmount
	}

	scaled := d.Mul(factor).Round(0)
	if !scaled.IsInteger() || scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, ErrInvalidAmount
	}

	return scaled.IntPart(), nil
}
