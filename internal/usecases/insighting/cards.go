package insighting

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type salesSummary struct {
	orders     int
	income     money
	newClients int
}

type trafficSummary struct {
	inbound        int
	uniqueVisitors int
	sessionTotal   float64
	days           int
}

// BuildCards calcula os indicadores de period comparando com o mês anterior e com o mesmo mês do ano anterior
func BuildCards(sales []domain.JoinedSale, traffic []domain.SiteTraffic, period domain.ReportPeriod) domain.DashboardCards {
	firstPurchase := firstPurchaseByClient(sales)

	current := summarizeSales(sales, firstPurchase, period)
	previous := summarizeSales(sales, firstPurchase, period.Previous())
	lastYear := summarizeSales(sales, firstPurchase, period.SameMonthLastYear())

	var annual money
	for _, s := range sales {
		if s.SoldAt.Year() == period.Year {
			annual.add(s.Income())
		}
	}

	currentTraffic := summarizeTraffic(traffic, period)
	previousTraffic := summarizeTraffic(traffic, period.Previous())

	cards := domain.DashboardCards{
		Period:         period.String(),
		Orders:         current.orders,
		Income:         current.income.value(),
		NewClients:     current.newClients,
		AnnualIncome:   annual.value(),
		InboundTraffic: currentTraffic.inbound,
		UniqueVisitors: currentTraffic.uniqueVisitors,

		PercentageDiffOrders:         utils.PercentageChange(float64(current.orders), float64(previous.orders)),
		PercentageDiffIncome:         utils.PercentageChange(current.income.value(), previous.income.value()),
		PercentageDiffNewClients:     utils.PercentageChange(float64(current.newClients), float64(previous.newClients)),
		PercentageDiffInboundTraffic: utils.PercentageChange(float64(currentTraffic.inbound), float64(previousTraffic.inbound)),
		PercentageDiffUniqueVisitors: utils.PercentageChange(float64(currentTraffic.uniqueVisitors), float64(previousTraffic.uniqueVisitors)),
		PercentageDiffIncomeYear:     utils.PercentageChange(current.income.value(), lastYear.income.value()),
	}

	if currentTraffic.days > 0 {
		avg := utils.RoundWithTwoDecimalPlace(currentTraffic.sessionTotal / float64(currentTraffic.days))
		cards.AvgSessionDuration = &avg
	}

	return cards
}

// firstPurchaseByClient retorna a data da primeira compra de cada cliente em todo o histórico
func firstPurchaseByClient(sales []domain.JoinedSale) map[int]time.Time {
	first := make(map[int]time.Time)
	for _, s := range sales {
		if t, ok := first[s.ClientID]; !ok || s.SoldAt.Before(t) {
			first[s.ClientID] = s.SoldAt
		}
	}
	return first
}

func summarizeSales(sales []domain.JoinedSale, firstPurchase map[int]time.Time, period domain.ReportPeriod) salesSummary {
	var summary salesSummary

	orders := make(map[int]struct{})
	for _, s := range sales {
		if !period.Contains(s.SoldAt) {
			continue
		}
		orders[s.SaleID] = struct{}{}
		summary.income.add(s.Income())
	}
	summary.orders = len(orders)

	for _, t := range firstPurchase {
		if period.Contains(t) {
			summary.newClients++
		}
	}

	return summary
}

func summarizeTraffic(traffic []domain.SiteTraffic, period domain.ReportPeriod) trafficSummary {
	var summary trafficSummary
	for _, t := range traffic {
		if !period.Contains(t.Day) {
			continue
		}
		summary.inbound += t.InboundTraffic
		summary.uniqueVisitors += t.UniqueVisitors
		summary.sessionTotal += t.AvgSessionDuration
		summary.days++
	}
	return summary
}
