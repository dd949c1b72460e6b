package insighting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// GeoChart soma o valor final das vendas de year por país do cliente e converte o país para ISO alpha-3.
// Países sem código conhecido são descartados e devolvidos em unresolved.
// Nomes diferentes que resolvem para o mesmo código são somados.
func GeoChart(sales []domain.JoinedSale, year int, resolver CountryResolver) (items []domain.GeoItem, unresolved []string) {
	byCountry := make(map[string]*money)
	for _, s := range sales {
		if s.SoldAt.Year() != year || s.ClientCountry == nil || s.FinalPrice == nil {
			continue
		}

		sum, ok := byCountry[*s.ClientCountry]
		if !ok {
			sum = &money{}
			byCountry[*s.ClientCountry] = sum
		}
		sum.add(*s.FinalPrice)
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	items = make([]domain.GeoItem, 0, len(countries))
	unresolved = make([]string, 0)
	byCode := make(map[string]*money)
	order := make([]string, 0, len(countries))
	for _, c := range countries {
		code, ok := resolver.Alpha3(c)
		if !ok {
			unresolved = append(unresolved, c)
			continue
		}

		sum, exists := byCode[code]
		if !exists {
			sum = &money{}
			byCode[code] = sum
			order = append(order, code)
		}
		sum.total = sum.total.Add(byCountry[c].total)
	}

	for _, code := range order {
		items = append(items, domain.GeoItem{ID: code, Value: byCode[code].value()})
	}

	return items, unresolved
}
