package tiktokdomain

const (
	MetricCost         = "cost"
	MetricOrders       = "orders"
	MetricGrossRevenue = "gross_revenue"

	DimensionCampaignID = "campaign_id"
	DimensionDay        = "stat_time_day"
)

type ReportFiltering struct {
	CampaignIDs []string `json:"campaign_ids,omitempty"`
}

type ReportRow struct {
	Metrics    map[string]Metric `json:"metrics"`
	Dimensions map[string]string `json:"dimensions"`
}

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

type ReportData struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

// Metric retorna a métrica da linha, zero quando ausente
func (r ReportRow) Metric(name string) Metric {
	if m, ok := r.Metrics[name]; ok {
		return m
	}
	return Metric{}
}
