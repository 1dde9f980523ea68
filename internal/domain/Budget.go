package domain

// BudgetState é o orçamento diário configurado na plataforma de anúncios.
// A plataforma é a fonte da verdade, este sistema só lê e grava.
type BudgetState struct {
	CurrentBudget float64 `json:"current_budget"`
}

// DailyReport junta as duas leituras feitas em paralelo para um mesmo pedido
type DailyReport struct {
	Snapshot Snapshot    `json:"snapshot"`
	Budget   BudgetState `json:"budget"`
}
