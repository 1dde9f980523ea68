package tiktokdomain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Metric aceita os valores como número ou string ("12.50"), como a API devolve
// dependendo do endpoint. Vazio, nulo ou "-" viram zero.
type Metric struct {
	decimal.Decimal
}

func NewMetric(v string) Metric {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return Metric{}
	}
	return Metric{Decimal: d}
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(b), `"`)
	switch string(raw) {
	case "", "null", "-":
		m.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return err
	}

	m.Decimal = d
	return nil
}
