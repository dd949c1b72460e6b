package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Dashboard define as leituras servidas pela API, todas a partir do cache
type Dashboard interface {
	// Cards retorna os indicadores do período de referência
	Cards() (*domain.DashboardCards, time.Time, error)

	// GeoChart retorna o total vendido por país no ano do mapa
	GeoChart() ([]domain.GeoItem, time.Time, error)

	// LineChart retorna as séries mensais de vendas; com year apenas a série daquele ano
	LineChart(year *int) ([]domain.LineSeries, time.Time, error)

	// BarChart retorna o tráfego agregado por mês
	BarChart() ([]domain.BarChartItem, time.Time, error)

	// PieChart retorna a participação de cada categoria no ano corrente
	PieChart() ([]domain.PieSlice, time.Time, error)

	Team() ([]domain.TeamMember, time.Time, error)
	Clients() ([]domain.Client, time.Time, error)
	Sales() ([]domain.JoinedSale, time.Time, error)
}

// Refresher recalcula todo o pipeline e grava o cache
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

// CountryResolver converte nomes de país em códigos ISO alpha-3
type CountryResolver interface {
	Alpha3(name string) (string, bool)
}

// RosterSyncer recarrega o slot da equipe a partir do arquivo
type RosterSyncer interface {
	SyncCache() error
}
