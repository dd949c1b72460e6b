package insighting

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// JoinSales faz o left join de vendas com produtos e clientes.
// Toda venda aparece exatamente uma vez no resultado; campos sem correspondência ficam nulos.
// Chaves duplicadas em produtos ou clientes usam a primeira ocorrência.
func JoinSales(sales []domain.Sale, products []domain.Product, clients []domain.Client) ([]domain.JoinedSale, error) {
	productsByID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		if _, exists := productsByID[p.ID]; !exists {
			productsByID[p.ID] = p
		}
	}

	clientsByID := make(map[int]domain.Client, len(clients))
	for _, c := range clients {
		if _, exists := clientsByID[c.ID]; !exists {
			clientsByID[c.ID] = c
		}
	}

	joined := make([]domain.JoinedSale, 0, len(sales))
	for _, sale := range sales {
		soldAt, err := utils.ParseDateTime(sale.Date)
		if err != nil {
			return nil, NewInsightError(ErrInvalidSaleDate, "join", fmt.Sprintf("venda %d: %v", sale.ID, err))
		}

		if sale.Quantity < 0 {
			return nil, NewInsightError(ErrInvalidSale, "join", fmt.Sprintf("venda %d com quantidade negativa", sale.ID))
		}

		row := domain.JoinedSale{
			SaleID:       sale.ID,
			ClientID:     sale.ClientID,
			SaleQuantity: sale.Quantity,
			SaleDate:     sale.Date,
			SoldAt:       soldAt,
		}

		if product, ok := productsByID[sale.ProductID]; ok {
			if product.Price < 0 {
				return nil, NewInsightError(ErrInvalidSale, "join", fmt.Sprintf("produto %d com preço negativo", product.ID))
			}

			row.ProductBrand = ptr(product.Brand)
			row.ProductModel = ptr(product.Model)
			row.ProductCategory = ptr(product.Category)
			row.ProductPrice = ptr(product.Price)
			row.FinalPrice = ptr(utils.Multiply(sale.Quantity, product.Price))
		}

		if client, ok := clientsByID[sale.ClientID]; ok {
			row.RegisterID = ptr(client.RegisterID)
			row.ClientName = ptr(client.Name)
			row.ClientAge = ptr(client.Age)
			row.ClientPhone = ptr(client.Phone)
			row.ClientEmail = ptr(client.Email)
			row.ClientAddress = ptr(client.Address)
			row.ClientCity = ptr(client.City)
			row.ClientZipCode = ptr(client.ZipCode)
			row.ClientCountry = ptr(client.Country)
		}

		joined = append(joined, row)
	}

	return joined, nil
}

func ptr[T any](v T) *T {
	return &v
}
