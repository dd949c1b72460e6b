// Package scheduler contém os serviços de agendamento para atualização dos dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type DashboardRefreshConfig struct {
	Interval     time.Duration
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService recalcula o cache do dashboard em intervalo fixo (ou cron)
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           insighting.Refresher
	cache               *cache.Cache
	config              DashboardRefreshConfig
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCycleID         string
	lastError           string
	completedRuns       int
	failedRuns          int
}

func NewDashboardRefreshService(
	refresher insighting.Refresher,
	store *cache.Cache,
	cfg *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		Interval:     cfg.DashboardRefresh.Interval,     // Default: 60s
		CronSchedule: cfg.DashboardRefresh.CronSchedule, // Quando preenchido substitui o intervalo
		Enabled:      cfg.DashboardRefresh.Enabled,      // Default: habilitado
	}

	logrus.WithFields(logrus.Fields{
		"interval":      refreshConfig.Interval.String(),
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		cache:     store,
		config:    refreshConfig,
		baseCtx:   context.Background(),
	}
}

// Warm executa o primeiro ciclo de forma síncrona; deve rodar antes do servidor aceitar requisições
func (s *DashboardRefreshService) Warm(ctx context.Context) error {
	logrus.Info("Carregando cache inicial do dashboard")
	return s.RefreshDashboard(ctx)
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica do dashboard desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	job := func() {
		if err := s.RefreshDashboard(ctx); err != nil {
			// o cache mantém os valores anteriores e o agendamento continua
			logrus.WithError(err).Error("Erro na atualização do cache do dashboard")
		}
	}

	var err error
	if s.config.CronSchedule != "" {
		logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do dashboard")
		_, err = s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(job)
	} else {
		logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando atualização periódica do dashboard")
		_, err = s.scheduler.Every(s.config.Interval).WaitForSchedule().SingletonMode().Do(job)
	}
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDashboard executa um ciclo completo; ciclos sobrepostos são ignorados
func (s *DashboardRefreshService) RefreshDashboard(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do dashboard já está em execução")
		return nil
	}

	cycleID, err := utils.GenerateID()
	if err != nil {
		s.syncMutex.Unlock()
		return fmt.Errorf("erro ao gerar id do ciclo: %w", err)
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.lastCycleID = cycleID
	s.syncMutex.Unlock()

	ctx = log.ContextWithCorrelationID(ctx, cycleID)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando atualização do cache do dashboard")

	start := time.Now()
	err = s.refresher.RefreshAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.failedRuns++
		s.lastError = err.Error()
	} else {
		s.completedRuns++
		s.lastError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Atualização do cache do dashboard falhou, valores anteriores mantidos")
		return err
	}

	logger.WithField("duration_ms", time.Since(start).Milliseconds()).Info("Atualização do cache do dashboard concluída")

	return nil
}

// TriggerManualSync inicia manualmente um ciclo em segundo plano; retorna false se já houver um em andamento
func (s *DashboardRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go func() {
		if err := s.RefreshDashboard(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do dashboard")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	slots := make(map[string]time.Time)
	for slot, at := range s.cache.RefreshedAt() {
		slots[string(slot)] = at
	}

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_interval":          s.config.Interval.String(),
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_cycle_id":          s.lastCycleID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
		"completed_runs":         s.completedRuns,
		"failed_runs":            s.failedRuns,
		"cache_warm":             s.cache.Warm(),
		"cache_refreshed_at":     slots,
	}
}
