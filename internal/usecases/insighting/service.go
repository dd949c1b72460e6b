package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Service recalcula o pipeline do dashboard e serve as leituras a partir do cache
type Service struct {
	salesRepository   repository.SalesRepository
	trafficRepository repository.TrafficRepository
	roster            RosterSyncer
	cache             *cache.Cache
	resolver          CountryResolver
	report            config.Report
	now               func() time.Time
}

var (
	_ Dashboard = (*Service)(nil)
	_ Refresher = (*Service)(nil)
)

type Option func(*Service)

// WithClock troca o relógio usado pelo período corrente e pelo gráfico de pizza
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService cria uma nova instância do serviço do dashboard
func NewService(
	cfg *config.Config,
	salesRepo repository.SalesRepository,
	trafficRepo repository.TrafficRepository,
	roster RosterSyncer,
	store *cache.Cache,
	resolver CountryResolver,
	opts ...Option,
) *Service {
	s := &Service{
		salesRepository:   salesRepo,
		trafficRepository: trafficRepo,
		roster:            roster,
		cache:             store,
		resolver:          resolver,
		report:            cfg.Report,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ReportPeriod resolve o período dos cards; vazio significa o mês corrente
func (s *Service) ReportPeriod() (domain.ReportPeriod, error) {
	if s.report.Period == "" {
		return domain.PeriodOf(s.now()), nil
	}

	period, err := domain.ParseReportPeriod(s.report.Period)
	if err != nil {
		return domain.ReportPeriod{}, NewInsightError(ErrInvalidPeriod, "cards", err.Error())
	}

	return period, nil
}

// snapshot é o resultado completo de um ciclo, calculado antes de qualquer escrita no cache
type snapshot struct {
	sales   []domain.JoinedSale
	clients []domain.Client
	bar     []domain.BarChartItem
	line    []domain.LineSeries
	geo     []domain.GeoItem
	cards   domain.DashboardCards
}

// RefreshAll carrega todas as tabelas, recalcula todos os blocos e só então grava o cache.
// Qualquer erro aborta o ciclo sem gravar nenhum slot.
func (s *Service) RefreshAll(ctx context.Context) error {
	logger := log.ForContext(ctx)
	start := time.Now()

	snap, err := s.compute(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// equipe primeiro: se o arquivo de equipe falhar nenhum outro slot é tocado
	if err := s.roster.SyncCache(); err != nil {
		return NewInsightError(fmt.Errorf("%w: %w", ErrSyncTeam, err), "team", "")
	}

	writes := []struct {
		slot  cache.Slot
		value any
	}{
		{cache.SalesData, snap.sales},
		{cache.ClientData, snap.clients},
		{cache.BarChartData, snap.bar},
		{cache.LineChartData, snap.line},
		{cache.GeoChartData, snap.geo},
		{cache.CardsData, snap.cards},
	}
	for _, w := range writes {
		if err := s.cache.Set(w.slot, w.value); err != nil {
			return err
		}
	}

	logger.WithFields(log.Fields{
		"refresh_sales":   len(snap.sales),
		"refresh_clients": len(snap.clients),
		"refresh_months":  len(snap.bar),
		"refresh_geo":     len(snap.geo),
		"duration_ms":     time.Since(start).Milliseconds(),
	}).Info("insights: cache do dashboard atualizado")

	return nil
}

func (s *Service) compute(ctx context.Context) (*snapshot, error) {
	logger := log.ForContext(ctx)

	period, err := s.ReportPeriod()
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepository.ListSales()
	if err != nil {
		return nil, NewInsightError(fmt.Errorf("%w: %w", ErrLoadTables, err), "sales", "")
	}

	products, err := s.salesRepository.ListProducts()
	if err != nil {
		return nil, NewInsightError(fmt.Errorf("%w: %w", ErrLoadTables, err), "products", "")
	}

	clients, err := s.salesRepository.ListClients()
	if err != nil {
		return nil, NewInsightError(fmt.Errorf("%w: %w", ErrLoadTables, err), "clients", "")
	}

	traffic, err := s.trafficRepository.ListTraffic()
	if err != nil {
		return nil, NewInsightError(fmt.Errorf("%w: %w", ErrLoadTables, err), "traffic", "")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	joined, err := JoinSales(sales, products, clients)
	if err != nil {
		return nil, err
	}

	geo, unresolved := GeoChart(joined, s.report.GeoYear, s.resolver)
	for _, country := range unresolved {
		logger.WithField("country", country).Warn("insights: país sem código ISO, removido do mapa")
	}

	return &snapshot{
		sales:   joined,
		clients: clients,
		bar:     BarChart(traffic),
		line:    LineChart(joined, nil),
		geo:     geo,
		cards:   BuildCards(joined, traffic, period),
	}, nil
}

func read[T any](c *cache.Cache, slot cache.Slot) (T, time.Time, error) {
	value, refreshedAt, err := cache.Get[T](c, slot)
	if err != nil {
		return value, refreshedAt, fmt.Errorf("%w: %w", ErrCacheNotReady, err)
	}
	return value, refreshedAt, nil
}

func (s *Service) Cards() (*domain.DashboardCards, time.Time, error) {
	cards, refreshedAt, err := read[domain.DashboardCards](s.cache, cache.CardsData)
	if err != nil {
		return nil, refreshedAt, err
	}
	return &cards, refreshedAt, nil
}

func (s *Service) GeoChart() ([]domain.GeoItem, time.Time, error) {
	return read[[]domain.GeoItem](s.cache, cache.GeoChartData)
}

// LineChart sem ano (ou com ano zero) lê o slot pronto; com ano filtra a visão de vendas em cache
func (s *Service) LineChart(year *int) ([]domain.LineSeries, time.Time, error) {
	if year == nil || *year == 0 {
		return read[[]domain.LineSeries](s.cache, cache.LineChartData)
	}

	sales, refreshedAt, err := read[[]domain.JoinedSale](s.cache, cache.SalesData)
	if err != nil {
		return nil, refreshedAt, err
	}

	return LineChart(sales, year), refreshedAt, nil
}

func (s *Service) BarChart() ([]domain.BarChartItem, time.Time, error) {
	return read[[]domain.BarChartItem](s.cache, cache.BarChartData)
}

// PieChart é recalculado a cada chamada para usar o ano corrente do momento da leitura
func (s *Service) PieChart() ([]domain.PieSlice, time.Time, error) {
	sales, refreshedAt, err := read[[]domain.JoinedSale](s.cache, cache.SalesData)
	if err != nil {
		return nil, refreshedAt, err
	}

	return PieChart(sales, s.now()), refreshedAt, nil
}

func (s *Service) Team() ([]domain.TeamMember, time.Time, error) {
	return read[[]domain.TeamMember](s.cache, cache.TeamData)
}

func (s *Service) Clients() ([]domain.Client, time.Time, error) {
	return read[[]domain.Client](s.cache, cache.ClientData)
}

func (s *Service) Sales() ([]domain.JoinedSale, time.Time, error) {
	return read[[]domain.JoinedSale](s.cache, cache.SalesData)
}
