package tiktokdomain

// BudgetModeDaily é o modo de orçamento diário da Business API
const BudgetModeDaily = "BUDGET_MODE_DAY"

type Campaign struct {
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	Budget          Metric `json:"budget"`
	BudgetMode      string `json:"budget_mode"`
	OperationStatus string `json:"operation_status"`
}

type CampaignList struct {
	List     []Campaign `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type UpdateBudgetRequest struct {
	AdvertiserID string `json:"advertiser_id"`
	CampaignID   string `json:"campaign_id"`
	Budget       int64  `json:"budget"`
	BudgetMode   string `json:"budget_mode"`
}
