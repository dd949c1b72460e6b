package domain

// LineChartColor é a cor usada em todas as séries do gráfico de linhas
const LineChartColor = "#00ff00"

// BarChartItem agrega o tráfego de um mês (formato yyyy-mm)
type BarChartItem struct {
	YearMonth      string `json:"year_month"`
	InboundTraffic int    `json:"inbound_traffic"`
	UniqueVisitors int    `json:"unique_visitors"`
}

type LinePoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// LineSeries é a série de vendas mensais de um ano
type LineSeries struct {
	ID    string      `json:"id"`
	Color string      `json:"color"`
	Data  []LinePoint `json:"data"`
}

type PieSlice struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GeoItem é o total vendido para um país, identificado pelo código ISO alpha-3
type GeoItem struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}
