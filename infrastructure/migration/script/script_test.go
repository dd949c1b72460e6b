package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/countrycode"
)

func TestGenerator_IsDeterministic(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, NewGenerator(7).Sales(100, 10, 5, from, to), NewGenerator(7).Sales(100, 10, 5, from, to))
	assert.Equal(t, NewGenerator(7).Clients(20), NewGenerator(7).Clients(20))
	assert.NotEqual(t, NewGenerator(7).Clients(20), NewGenerator(8).Clients(20))
}

func TestGenerator_Tables(t *testing.T) {
	g := NewGenerator(42)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	sales := g.Sales(500, 30, 12, from, to)
	require.Len(t, sales, 500)
	assert.Equal(t, "2024-01-01", sales[0].Date)
	for _, s := range sales {
		assert.True(t, s.ClientID >= 1 && s.ClientID <= 30)
		assert.True(t, s.ProductID >= 1 && s.ProductID <= 12)
		assert.True(t, s.Quantity >= 1 && s.Quantity <= 4)
		assert.True(t, s.Date >= "2024-01-01" && s.Date <= "2024-03-31", s.Date)
	}

	traffic := g.Traffic(from, to)
	require.Len(t, traffic, 91)
	for _, day := range traffic {
		assert.LessOrEqual(t, day.UniqueVisitors, day.InboundTraffic)
	}

	resolver := countrycode.New()
	for _, c := range g.Clients(200) {
		_, ok := resolver.Alpha3(c.Country)
		assert.True(t, ok, "país sem código: %s", c.Country)
	}

	for _, p := range g.Products(50) {
		assert.Positive(t, p.Price)
		assert.Contains(t, categories, p.Category)
	}
}

func TestSeed(t *testing.T) {
	cfg := config.Database{
		DataDir:      t.TempDir() + "/data",
		SalesFile:    "sales.csv",
		ProductsFile: "products.csv",
		ClientsFile:  "clients.csv",
		TeamFile:     "team.csv",
		TrafficFile:  "site_traffic.csv",
	}

	opts, err := parseOptions([]string{"--sales=40", "--clients=5", "--products=3", "--team=4", "--from=2024-10-01", "--to=2024-11-30"})
	require.NoError(t, err)

	require.NoError(t, seed(context.Background(), cfg, opts))

	conn, err := flatfile.NewConnection(context.Background(), cfg)
	require.NoError(t, err)

	sales, err := repository.NewSalesRepository(conn, cfg).ListSales()
	require.NoError(t, err)
	assert.Len(t, sales, 40)

	team, err := repository.NewTeamRepository(conn, cfg).ListTeamMembers()
	require.NoError(t, err)
	assert.Len(t, team, 4)

	traffic, err := repository.NewTrafficRepository(conn, cfg).ListTraffic()
	require.NoError(t, err)
	assert.Len(t, traffic, 61)

	t.Run("não sobrescreve sem --force", func(t *testing.T) {
		require.NoError(t, os.WriteFile(cfg.Path("team.csv"), []byte("id,name,email,phone,role,access\n"), 0o644))

		require.NoError(t, seed(context.Background(), cfg, opts))

		team, err := repository.NewTeamRepository(conn, cfg).ListTeamMembers()
		require.NoError(t, err)
		assert.Empty(t, team)
	})
}

func TestParseOptions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "não numérico", args: []string{"--sales=muitas"}},
		{name: "sem clientes", args: []string{"--clients=0"}},
		{name: "sem produtos", args: []string{"--products=0"}},
		{name: "vendas negativas", args: []string{"--sales=-1"}},
		{name: "semente zero", args: []string{"--seed=0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.False(t, opts.Force)

	opts, err = parseOptions([]string{"-f", "--team=0"})
	require.NoError(t, err)
	assert.True(t, opts.Force)
	assert.Zero(t, opts.Team)
}
