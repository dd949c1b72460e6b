package domain

// DashboardCards reúne os indicadores do período de referência.
// Variações percentuais são nulas quando o período anterior é zero.
type DashboardCards struct {
	Period             string   `json:"period"`
	Orders             int      `json:"orders"`
	Income             float64  `json:"income"`
	NewClients         int      `json:"new_clients"`
	AnnualIncome       float64  `json:"annual_income"`
	InboundTraffic     int      `json:"inbound_traffic"`
	UniqueVisitors     int      `json:"unique_visitors"`
	AvgSessionDuration *float64 `json:"avg_session_duration"`

	PercentageDiffOrders         *float64 `json:"percentage_diff_orders"`
	PercentageDiffIncome         *float64 `json:"percentage_diff_income"`
	PercentageDiffNewClients     *float64 `json:"percentage_diff_new_clients"`
	PercentageDiffInboundTraffic *float64 `json:"percentage_diff_inbound_traffic"`
	PercentageDiffUniqueVisitors *float64 `json:"percentage_diff_unique_visitors"`
	PercentageDiffIncomeYear     *float64 `json:"percentage_diff_income_year"`
}
