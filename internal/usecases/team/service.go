package team

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type Roster interface {
	AddMember(request domain.CreateTeamMemberRequest) (int, error)
	DeleteMember(id int) error
	SyncCache() error
}

// Service serializa toda leitura-modificação-escrita do arquivo de equipe
type Service struct {
	mu         sync.Mutex
	repository repository.TeamRepository
	cache      *cache.Cache
}

var _ Roster = (*Service)(nil)

func NewService(repo repository.TeamRepository, store *cache.Cache) *Service {
	return &Service{
		repository: repo,
		cache:      store,
	}
}

// AddMember valida, atribui o próximo ID (maior ID + 1, ou 1) e persiste o novo membro
func (s *Service) AddMember(request domain.CreateTeamMemberRequest) (int, error) {
	if err := validate(request); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.repository.ListTeamMembers()
	if err != nil {
		if !errors.Is(err, flatfile.ErrFileNotFound) {
			return 0, fmt.Errorf("%w: %w", ErrLoadRoster, err)
		}
		members = []domain.TeamMember{}
	}

	member := domain.TeamMember{
		ID:     nextID(members),
		Name:   request.FirstName + " " + request.LastName,
		Email:  request.Email,
		Phone:  request.Contact,
		Role:   request.Role,
		Access: request.AccessLevel,
	}

	updated := make([]domain.TeamMember, 0, len(members)+1)
	updated = append(updated, members...)
	updated = append(updated, member)

	if err := s.repository.SaveTeamMembers(updated); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistRoster, err)
	}

	s.publish(updated)

	log.L.WithField("member_id", member.ID).Info("team: membro adicionado")

	return member.ID, nil
}

// DeleteMember remove o membro; ID inexistente ou arquivo ausente não alteram nada
func (s *Service) DeleteMember(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.repository.ListTeamMembers()
	if err != nil {
		if errors.Is(err, flatfile.ErrFileNotFound) {
			return &NotFoundError{Err: ErrRosterNotFound, ID: id}
		}
		return fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}

	updated := make([]domain.TeamMember, 0, len(members))
	found := false
	for _, m := range members {
		if m.ID == id {
			found = true
			continue
		}
		updated = append(updated, m)
	}

	if !found {
		return &NotFoundError{Err: ErrMemberNotFound, ID: id}
	}

	if err := s.repository.SaveTeamMembers(updated); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistRoster, err)
	}

	s.publish(updated)

	log.L.WithField("member_id", id).Info("team: membro removido")

	return nil
}

// SyncCache recarrega o slot da equipe a partir do arquivo, sob o mesmo lock das alterações
func (s *Service) SyncCache() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.repository.ListTeamMembers()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}

	s.publish(members)
	return nil
}

func (s *Service) publish(members []domain.TeamMember) {
	// o cache só conhece slots fixos, Set não falha para TeamData
	_ = s.cache.Set(cache.TeamData, members)
}

func validate(request domain.CreateTeamMemberRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", request.FirstName},
		{"lastName", request.LastName},
		{"email", request.Email},
		{"contact", request.Contact},
		{"role", request.Role},
		{"accessLevel", request.AccessLevel},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Err: ErrRequiredField, Field: f.name}
		}
	}

	return nil
}

func nextID(members []domain.TeamMember) int {
	maxID := 0
	for _, m := range members {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}
