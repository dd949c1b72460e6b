package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/team"
	"github.com/vfg2006/sales-dashboard-api/pkg/countrycode"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dataconn(ctx, cfg.Database)

	salesRepo := repository.NewSalesRepository(conn, cfg.Database)
	trafficRepo := repository.NewTrafficRepository(conn, cfg.Database)
	teamRepo := repository.NewTeamRepository(conn, cfg.Database)

	store := cache.New()

	rosterService := team.NewService(teamRepo, store)
	dashboardService := insighting.NewService(
		cfg,
		salesRepo,
		trafficRepo,
		rosterService, // Recarrega o slot da equipe sob o mesmo lock das alterações
		store,
		countrycode.New(),
	)

	refreshService := scheduler.NewDashboardRefreshService(dashboardService, store, cfg)

	// O servidor só aceita requisições com o cache completo
	if err := refreshService.Warm(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o cache inicial do dashboard")
	}

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		conn,
		dashboardService,
		rosterService,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dataconn valida o diretório dos arquivos de dados
func dataconn(ctx context.Context, dbConfig config.Database) *flatfile.Connection {
	conn, err := flatfile.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao acessar o diretório de dados")
	}

	logrus.WithField("data_dir", dbConfig.DataDir).Info("Diretório de dados disponível")
	return conn
}
