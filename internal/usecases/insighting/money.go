package insighting

import "github.com/shopspring/decimal"

// money acumula valores monetários sem erro de ponto flutuante
type money struct {
	total decimal.Decimal
}

func (m *money) add(v float64) {
	m.total = m.total.Add(decimal.NewFromFloat(v))
}

func (m money) value() float64 {
	return m.total.Round(2).InexactFloat64()
}

// share devolve part/total*100 com duas casas
func share(part, total money) float64 {
	if total.total.IsZero() {
		return 0
	}
	return part.total.Div(total.total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
