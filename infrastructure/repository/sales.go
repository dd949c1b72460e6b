// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type SalesRepository interface {
	ListSales() ([]domain.Sale, error)
	ListProducts() ([]domain.Product, error)
	ListClients() ([]domain.Client, error)
}

type salesRepository struct {
	conn flatfile.Conn
	cfg  config.Database
}

func NewSalesRepository(conn flatfile.Conn, cfg config.Database) SalesRepository {
	return &salesRepository{
		conn: conn,
		cfg:  cfg,
	}
}

func (r *salesRepository) ListSales() ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0)
	if err := r.conn.ReadTable(r.cfg.SalesFile, &sales); err != nil {
		return nil, fmt.Errorf("erro ao carregar vendas: %w", err)
	}

	return sales, nil
}

func (r *salesRepository) ListProducts() ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	if err := r.conn.ReadTable(r.cfg.ProductsFile, &products); err != nil {
		return nil, fmt.Errorf("erro ao carregar produtos: %w", err)
	}

	return products, nil
}

func (r *salesRepository) ListClients() ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	if err := r.conn.ReadTable(r.cfg.ClientsFile, &clients); err != nil {
		return nil, fmt.Errorf("erro ao carregar clientes: %w", err)
	}

	return clients, nil
}
