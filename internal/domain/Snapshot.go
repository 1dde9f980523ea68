package domain

import "time"

// Snapshot são as métricas do dia para a campanha configurada.
// É recalculado a cada requisição e nunca persistido.
type Snapshot struct {
	Date   time.Time `json:"date"`
	Cost   float64   `json:"cost"`
	Orders int64     `json:"orders"`
	Gross  float64   `json:"gross"`
}

// CPO retorna o custo por pedido, 0 quando não houve pedidos
func (s Snapshot) CPO() float64 {
	if s.Orders <= 0 {
		return 0
	}

	return s.Cost / float64(s.Orders)
}

// ROI retorna a receita bruta sobre o custo em percentual, 0 quando não houve custo
func (s Snapshot) ROI() float64 {
	if s.Cost <= 0 {
		return 0
	}

	return s.Gross / s.Cost * 100
}
