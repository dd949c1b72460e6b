package insighting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const yearMonthLayout = "2006-01"

// BarChart soma o tráfego por mês do calendário, em ordem crescente de yyyy-mm, sem preencher meses vazios
func BarChart(traffic []domain.SiteTraffic) []domain.BarChartItem {
	byMonth := make(map[string]*domain.BarChartItem)
	for _, t := range traffic {
		key := t.Day.Format(yearMonthLayout)

		item, ok := byMonth[key]
		if !ok {
			item = &domain.BarChartItem{YearMonth: key}
			byMonth[key] = item
		}

		item.InboundTraffic += t.InboundTraffic
		item.UniqueVisitors += t.UniqueVisitors
	}

	items := make([]domain.BarChartItem, 0, len(byMonth))
	for _, item := range byMonth {
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].YearMonth < items[j].YearMonth
	})

	return items
}
