package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func setupDataDir(t *testing.T, files map[string]string) (flatfile.Conn, config.Database) {
	t.Helper()

	cfg := config.Database{
		DataDir:      t.TempDir(),
		SalesFile:    "sales.csv",
		ProductsFile: "products.csv",
		ClientsFile:  "clients.csv",
		TeamFile:     "team.csv",
		TrafficFile:  "site_traffic.csv",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, name), []byte(content), 0o644))
	}

	conn, err := flatfile.NewConnection(context.Background(), cfg)
	require.NoError(t, err)

	return conn, cfg
}

func TestSalesRepository(t *testing.T) {
	conn, cfg := setupDataDir(t, map[string]string{
		"sales.csv":    "id,client_id,product_id,quantity,date\n1,10,100,2,2024-11-03\n2,11,101,1,2024-10-28 14:00:00\n",
		"products.csv": "id,brand,model,category,price\n100,Acme,X1,Phones,19.99\n",
		"clients.csv":  "id,registerId,name,age,phone,email,address,city,zipCode,country\n10,R-1,Ana,34,555,ana@mail.com,Rua A,Lisbon,01000,Portugal\n",
	})

	repo := NewSalesRepository(conn, cfg)

	sales, err := repo.ListSales()
	require.NoError(t, err)
	assert.Equal(t, []domain.Sale{
		{ID: 1, ClientID: 10, ProductID: 100, Quantity: 2, Date: "2024-11-03"},
		{ID: 2, ClientID: 11, ProductID: 101, Quantity: 1, Date: "2024-10-28 14:00:00"},
	}, sales)

	products, err := repo.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{{ID: 100, Brand: "Acme", Model: "X1", Category: "Phones", Price: 19.99}}, products)

	clients, err := repo.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "R-1", clients[0].RegisterID)
	assert.Equal(t, 34, clients[0].Age)
	assert.Equal(t, "01000", clients[0].ZipCode)
	assert.Equal(t, "Portugal", clients[0].Country)
}

func TestSalesRepository_MissingFile(t *testing.T) {
	conn, cfg := setupDataDir(t, nil)

	_, err := NewSalesRepository(conn, cfg).ListSales()
	assert.True(t, errors.Is(err, flatfile.ErrFileNotFound))
}

func TestTrafficRepository(t *testing.T) {
	conn, cfg := setupDataDir(t, map[string]string{
		"site_traffic.csv": "date,inbound_traffic,unique_visitors,avg_session_duration\n2024-01-05,100,80,3.5\n2024-01-20,200,150,4.25\n",
	})

	traffic, err := NewTrafficRepository(conn, cfg).ListTraffic()
	require.NoError(t, err)
	require.Len(t, traffic, 2)

	assert.Equal(t, 100, traffic[0].InboundTraffic)
	assert.Equal(t, 80, traffic[0].UniqueVisitors)
	assert.Equal(t, 3.5, traffic[0].AvgSessionDuration)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), traffic[1].Day)
}

func TestTrafficRepository_InvalidDate(t *testing.T) {
	conn, cfg := setupDataDir(t, map[string]string{
		"site_traffic.csv": "date,inbound_traffic,unique_visitors,avg_session_duration\nontem,100,80,3.5\n",
	})

	_, err := NewTrafficRepository(conn, cfg).ListTraffic()
	assert.Error(t, err)
}

func TestTeamRepository_SaveAndList(t *testing.T) {
	conn, cfg := setupDataDir(t, nil)
	repo := NewTeamRepository(conn, cfg)

	_, err := repo.ListTeamMembers()
	assert.True(t, errors.Is(err, flatfile.ErrFileNotFound))

	members := []domain.TeamMember{
		{ID: 1, Name: "Ana Silva", Email: "ana@mail.com", Phone: "555-0100", Role: "Manager", Access: "admin"},
		{ID: 3, Name: "Rui Costa", Email: "rui@mail.com", Phone: "555-0101", Role: "Analyst", Access: "user"},
	}
	require.NoError(t, repo.SaveTeamMembers(members))

	content, err := os.ReadFile(filepath.Join(cfg.DataDir, "team.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"id,name,email,phone,role,access\n"+
			"1,Ana Silva,ana@mail.com,555-0100,Manager,admin\n"+
			"3,Rui Costa,rui@mail.com,555-0101,Analyst,user\n",
		string(content))

	got, err := repo.ListTeamMembers()
	require.NoError(t, err)
	assert.Equal(t, members, got)
}
