package repository

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// teamColumns é a ordem das colunas do arquivo de equipe
var teamColumns = []string{"id", "name", "email", "phone", "role", "access"}

type TeamRepository interface {
	ListTeamMembers() ([]domain.TeamMember, error)
	SaveTeamMembers(members []domain.TeamMember) error
}

type teamRepository struct {
	conn flatfile.Conn
	cfg  config.Database
}

func NewTeamRepository(conn flatfile.Conn, cfg config.Database) TeamRepository {
	return &teamRepository{
		conn: conn,
		cfg:  cfg,
	}
}

// ListTeamMembers devolve um erro que satisfaz errors.Is(err, flatfile.ErrFileNotFound) quando o arquivo não existe
func (r *teamRepository) ListTeamMembers() ([]domain.TeamMember, error) {
	members := make([]domain.TeamMember, 0)
	if err := r.conn.ReadTable(r.cfg.TeamFile, &members); err != nil {
		return nil, fmt.Errorf("erro ao carregar equipe: %w", err)
	}

	return members, nil
}

// SaveTeamMembers substitui o arquivo inteiro pela lista informada
func (r *teamRepository) SaveTeamMembers(members []domain.TeamMember) error {
	if members == nil {
		members = []domain.TeamMember{}
	}

	if err := r.conn.WriteTable(r.cfg.TeamFile, teamColumns, members); err != nil {
		return fmt.Errorf("erro ao salvar equipe: %w", err)
	}

	return nil
}
