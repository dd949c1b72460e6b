package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// PieChart calcula a participação percentual de cada categoria nas vendas do ano de now.
// Vendas sem produto (categoria ou preço nulos) ficam de fora. Total zero gera lista vazia.
func PieChart(sales []domain.JoinedSale, now time.Time) []domain.PieSlice {
	year := now.Year()

	var total money
	byCategory := make(map[string]*money)
	for _, s := range sales {
		if s.SoldAt.Year() != year || s.ProductCategory == nil || s.FinalPrice == nil {
			continue
		}

		category := *s.ProductCategory
		sum, ok := byCategory[category]
		if !ok {
			sum = &money{}
			byCategory[category] = sum
		}

		sum.add(*s.FinalPrice)
		total.add(*s.FinalPrice)
	}

	if total.total.IsZero() {
		return []domain.PieSlice{}
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	pie := make([]domain.PieSlice, 0, len(categories))
	for _, c := range categories {
		pie = append(pie, domain.PieSlice{
			ID:    c,
			Label: c,
			Value: share(*byCategory[c], total),
		})
	}

	return pie
}
