package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda valores monetários usando aritmética decimal,
// evitando erros de representação binária (ex: 2.675 -> 2.68)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Multiply retorna a*b arredondado com duas casas decimais
func Multiply(quantity int, price float64) float64 {
	return decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromFloat(price)).
		Round(2).
		InexactFloat64()
}

// PercentageChange retorna round((current-previous)/previous, 2), ou nil quando previous é zero
func PercentageChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}

	change := RoundWithTwoDecimalPlace((current - previous) / previous)
	return &change
}
