package domain

type Product struct {
	ID       int     `mapstructure:"id"`
	Brand    string  `mapstructure:"brand"`
	Model    string  `mapstructure:"model"`
	Category string  `mapstructure:"category"`
	Price    float64 `mapstructure:"price"`
}
