package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// monthAbbreviations segue a ordem do calendário, não a ordem alfabética
var monthAbbreviations = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ParseDateTime aceita datas puras (yyyy-mm-dd) e datas com horário
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}

// MonthAbbreviation retorna a abreviação em inglês do mês (Jan..Dec)
func MonthAbbreviation(m time.Month) string {
	return monthAbbreviations[m-1]
}
