package insighting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de insights do dashboard
var (
	// Erros de carga e cálculo
	ErrLoadTables      = errors.New("error loading source tables")
	ErrInvalidSaleDate = errors.New("invalid sale date")
	ErrInvalidSale     = errors.New("invalid sale")
	ErrInvalidPeriod   = errors.New("invalid report period")
	ErrSyncTeam        = errors.New("error synchronizing team roster")

	// Erros de leitura
	ErrCacheNotReady = errors.New("dashboard data not ready")
)

// InsightError é um erro com contexto adicional para o pipeline do dashboard
type InsightError struct {
	Err     error  // Erro base
	Step    string // Etapa do pipeline em que o erro ocorreu
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Step, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Step)
}

// Unwrap retorna o erro subjacente
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError cria um novo InsightError
func NewInsightError(err error, step string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Step:    step,
		Details: details,
	}
}
