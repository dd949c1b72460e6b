package domain

import "time"

// Sale representa uma linha do arquivo de vendas
type Sale struct {
	ID        int    `mapstructure:"id"`
	ClientID  int    `mapstructure:"client_id"`
	ProductID int    `mapstructure:"product_id"`
	Quantity  int    `mapstructure:"quantity"`
	Date      string `mapstructure:"date"`
}

// JoinedSale é a visão pública de uma venda enriquecida com produto e cliente.
// Campos de produto e cliente ficam nulos quando a chave estrangeira não é encontrada.
type JoinedSale struct {
	SaleID          int      `json:"saleId"`
	ClientID        int      `json:"client_id"`
	SaleQuantity    int      `json:"saleQuantity"`
	SaleDate        string   `json:"saleDate"`
	ProductBrand    *string  `json:"productBrand"`
	ProductModel    *string  `json:"productModel"`
	ProductCategory *string  `json:"productCategory"`
	ProductPrice    *float64 `json:"productPrice"`
	RegisterID      *string  `json:"registerId"`
	ClientName      *string  `json:"clientName"`
	ClientAge       *int     `json:"clientAge"`
	ClientPhone     *string  `json:"clientPhone"`
	ClientEmail     *string  `json:"clientEmail"`
	ClientAddress   *string  `json:"clientAddress"`
	ClientCity      *string  `json:"clientCity"`
	ClientZipCode   *string  `json:"clientZipCode"`
	ClientCountry   *string  `json:"clientCountry"`
	FinalPrice      *float64 `json:"finalPrice"`

	SoldAt time.Time `json:"-"`
}

// Income retorna o valor final da venda, ou zero quando o produto não foi encontrado
func (s JoinedSale) Income() float64 {
	if s.FinalPrice == nil {
		return 0
	}
	return *s.FinalPrice
}
