package team

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto da equipe
var (
	// Erros de validação
	ErrRequiredField = errors.New("required field missing")

	// Erros de busca
	ErrMemberNotFound = errors.New("team member not found")
	ErrRosterNotFound = errors.New("team data file not found")

	// Erros de arquivo
	ErrLoadRoster    = errors.New("error loading team roster")
	ErrPersistRoster = errors.New("error saving team roster")
)

// ValidationError indica o campo obrigatório ausente no cadastro
type ValidationError struct {
	Err   error  // Erro base
	Field string // Nome do campo no corpo da requisição
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Field '%s' is required", e.Field)
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError indica um ID inexistente, ou o arquivo de equipe ausente
type NotFoundError struct {
	Err error // Erro base
	ID  int   // ID procurado
}

// Error implementa a interface error
func (e *NotFoundError) Error() string {
	if errors.Is(e.Err, ErrRosterNotFound) {
		return "Team data file not found"
	}
	return fmt.Sprintf("User with ID %d not found", e.ID)
}

// Unwrap retorna o erro subjacente
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
