package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Colunas na ordem gravada em cada arquivo
var (
	salesColumns    = []string{"id", "client_id", "product_id", "quantity", "date"}
	productColumns  = []string{"id", "brand", "model", "category", "price"}
	clientColumns   = []string{"id", "registerId", "name", "age", "phone", "email", "address", "city", "zipCode", "country"}
	teamColumns     = []string{"id", "name", "email", "phone", "role", "access"}
	trafficColumns  = []string{"date", "inbound_traffic", "unique_visitors", "avg_session_duration"}
	validCountries  = []string{"United States", "Canada", "Mexico", "Brazil", "Argentina", "United Kingdom", "France", "Germany", "Italy", "Spain", "Russia", "China", "Japan", "South Korea", "India", "Australia", "New Zealand", "South Africa", "Egypt", "Nigeria", "Turkey", "Saudi Arabia", "Indonesia", "Thailand", "Vietnam", "Philippines", "Malaysia", "Singapore", "Bangladesh", "Pakistan", "Ukraine", "Poland", "Netherlands", "Belgium", "Sweden", "Norway", "Denmark", "Finland", "Switzerland", "Austria", "Greece", "Portugal", "Czech Republic", "Hungary", "Romania", "Chile", "Colombia", "Peru", "Iran", "Israel", "United Arab Emirates", "Qatar", "Kenya", "Morocco"}
	brands          = []string{"Apple", "Samsung", "Xiaomi", "Motorola", "Lenovo", "Dell", "Sony", "LG"}
	categories      = []string{"Phones", "Tablets", "Laptops", "Accessories", "Wearables"}
	roles           = []string{"Manager", "Analyst", "Sales Representative", "Support", "Intern"}
	accessLevels    = []string{"admin", "manager", "user"}
	modelPrefixes   = map[string]string{"Phones": "P", "Tablets": "T", "Laptops": "L", "Accessories": "A", "Wearables": "W"}
	priceByCategory = map[string][2]float64{
		"Phones":      {150, 1500},
		"Tablets":     {120, 1200},
		"Laptops":     {400, 3000},
		"Accessories": {5, 150},
		"Wearables":   {40, 600},
	}
)

// Generator produz tabelas sintéticas reprodutíveis a partir de uma semente
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator exige semente diferente de zero; com zero o gofakeit sorteia uma semente
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func email(first, last, host string, id int) string {
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), id, host)
}

func (g *Generator) Products(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := g.faker.RandomString(categories)
		limits := priceByCategory[category]

		products = append(products, domain.Product{
			ID:       i,
			Brand:    g.faker.RandomString(brands),
			Model:    fmt.Sprintf("%s%03d", modelPrefixes[category], i),
			Category: category,
			Price:    utils.RoundWithTwoDecimalPlace(g.faker.Float64Range(limits[0], limits[1])),
		})
	}
	return products
}

func (g *Generator) Clients(n int) []domain.Client {
	clients := make([]domain.Client, 0, n)
	for i := 1; i <= n; i++ {
		first, last := g.faker.FirstName(), g.faker.LastName()
		clients = append(clients, domain.Client{
			ID:         i,
			RegisterID: fmt.Sprintf("CL%03d", i),
			Name:       first + " " + last,
			Age:        g.faker.Number(18, 80),
			Phone:      g.faker.PhoneFormatted(),
			Email:      email(first, last, g.faker.DomainName(), i),
			Address:    g.faker.Street(),
			City:       g.faker.City(),
			ZipCode:    g.faker.Zip(),
			Country:    g.faker.RandomString(validCountries),
		})
	}
	return clients
}

// Sales distribui as vendas com datas uniformemente espaçadas entre from e to
func (g *Generator) Sales(n, clients, products int, from, to time.Time) []domain.Sale {
	sales := make([]domain.Sale, 0, n)
	days := int(to.Sub(from).Hours() / 24)

	for i := 0; i < n; i++ {
		offset := i * days / n
		sales = append(sales, domain.Sale{
			ID:        i + 1,
			ClientID:  g.faker.Number(1, clients),
			ProductID: g.faker.Number(1, products),
			Quantity:  g.faker.Number(1, 4),
			Date:      from.AddDate(0, 0, offset).Format(time.DateOnly),
		})
	}
	return sales
}

// Traffic gera uma linha por dia entre from e to, inclusive
func (g *Generator) Traffic(from, to time.Time) []domain.SiteTraffic {
	var traffic []domain.SiteTraffic
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		inbound := g.faker.Number(100, 5000)
		traffic = append(traffic, domain.SiteTraffic{
			Date:               day.Format(time.DateOnly),
			InboundTraffic:     inbound,
			UniqueVisitors:     g.faker.Number(50, inbound),
			AvgSessionDuration: utils.RoundWithTwoDecimalPlace(g.faker.Float64Range(30, 600)),
		})
	}
	return traffic
}

func (g *Generator) Team(n int) []domain.TeamMember {
	team := make([]domain.TeamMember, 0, n)
	for i := 1; i <= n; i++ {
		first, last := g.faker.FirstName(), g.faker.LastName()
		team = append(team, domain.TeamMember{
			ID:     i,
			Name:   first + " " + last,
			Email:  email(first, last, "company.com", i),
			Phone:  g.faker.PhoneFormatted(),
			Role:   g.faker.RandomString(roles),
			Access: g.faker.RandomString(accessLevels),
		})
	}
	return team
}
