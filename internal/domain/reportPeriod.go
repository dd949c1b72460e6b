package domain

import (
	"fmt"
	"time"
)

const reportPeriodLayout = "2006-01"

// ReportPeriod é o mês de referência usado pelos cards do dashboard
type ReportPeriod struct {
	Year  int
	Month time.Month
}

// ParseReportPeriod interpreta um período no formato yyyy-mm
func ParseReportPeriod(value string) (ReportPeriod, error) {
	t, err := time.Parse(reportPeriodLayout, value)
	if err != nil {
		return ReportPeriod{}, fmt.Errorf("período inválido %q, esperado yyyy-mm: %w", value, err)
	}
	return ReportPeriod{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf retorna o período que contém o instante informado
func PeriodOf(t time.Time) ReportPeriod {
	return ReportPeriod{Year: t.Year(), Month: t.Month()}
}

func (p ReportPeriod) start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Previous retorna o mês imediatamente anterior
func (p ReportPeriod) Previous() ReportPeriod {
	return PeriodOf(p.start().AddDate(0, -1, 0))
}

// SameMonthLastYear retorna o mesmo mês do ano anterior
func (p ReportPeriod) SameMonthLastYear() ReportPeriod {
	return ReportPeriod{Year: p.Year - 1, Month: p.Month}
}

// Contains indica se a data pertence ao período
func (p ReportPeriod) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p ReportPeriod) String() string {
	return p.start().Format(reportPeriodLayout)
}
