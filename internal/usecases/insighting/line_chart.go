package insighting

import (
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// LineChart soma o valor final das vendas por ano e mês.
// Gera uma série por ano (anos em ordem crescente) com os meses em ordem de calendário.
// Com year informado, apenas a série daquele ano é gerada.
func LineChart(sales []domain.JoinedSale, year *int) []domain.LineSeries {
	byYear := make(map[int]map[time.Month]*money)
	for _, s := range sales {
		y := s.SoldAt.Year()
		if year != nil && y != *year {
			continue
		}

		months, ok := byYear[y]
		if !ok {
			months = make(map[time.Month]*money)
			byYear[y] = months
		}

		total, ok := months[s.SoldAt.Month()]
		if !ok {
			total = &money{}
			months[s.SoldAt.Month()] = total
		}

		total.add(s.Income())
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	series := make([]domain.LineSeries, 0, len(years))
	for _, y := range years {
		months := byYear[y]

		data := make([]domain.LinePoint, 0, len(months))
		for m := time.January; m <= time.December; m++ {
			total, ok := months[m]
			if !ok {
				continue
			}

			data = append(data, domain.LinePoint{
				X: utils.MonthAbbreviation(m),
				Y: total.value(),
			})
		}

		series = append(series, domain.LineSeries{
			ID:    strconv.Itoa(y),
			Color: domain.LineChartColor,
			Data:  data,
		})
	}

	return series
}
