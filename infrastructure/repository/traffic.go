package repository

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type TrafficRepository interface {
	ListTraffic() ([]domain.SiteTraffic, error)
}

type trafficRepository struct {
	conn flatfile.Conn
	cfg  config.Database
}

func NewTrafficRepository(conn flatfile.Conn, cfg config.Database) TrafficRepository {
	return &trafficRepository{
		conn: conn,
		cfg:  cfg,
	}
}

// ListTraffic carrega o tráfego diário já com a data interpretada
func (r *trafficRepository) ListTraffic() ([]domain.SiteTraffic, error) {
	traffic := make([]domain.SiteTraffic, 0)
	if err := r.conn.ReadTable(r.cfg.TrafficFile, &traffic); err != nil {
		return nil, fmt.Errorf("erro ao carregar tráfego: %w", err)
	}

	for i := range traffic {
		day, err := utils.ParseDateTime(traffic[i].Date)
		if err != nil {
			return nil, fmt.Errorf("erro ao interpretar linha %d do tráfego: %w", i+1, err)
		}
		traffic[i].Day = day
	}

	return traffic, nil
}
