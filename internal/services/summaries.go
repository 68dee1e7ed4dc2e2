package services

import (
	"cmp"
	"maps"
	"slices"

	"sales-dashboard/internal/models"
)

// topLimit caps the ranked customer and product tables.
const topLimit = 10

// TopCustomers groups orders by customer name, sums sales, and returns
// up to limit entries sorted descending by sum. Ties break on the name
// so the ranking is stable across runs.
func TopCustomers(orders []models.Order, limit int) []models.CustomerSales {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.CustomerName] += o.Sales
	}

	result := make([]models.CustomerSales, 0, len(totals))
	for name, sales := range totals {
		result = append(result, models.CustomerSales{CustomerName: name, Sales: sales})
	}
	slices.SortFunc(result, func(a, b models.CustomerSales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		return cmp.Compare(a.CustomerName, b.CustomerName)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// TopProducts groups by the (product code, product line) pair. A code
// can appear under one line only in practice, but the pair is the
// grouping key so a dirty dataset still aggregates deterministically.
func TopProducts(orders []models.Order, limit int) []models.ProductSales {
	type productKey struct {
		code string
		line string
	}
	totals := make(map[productKey]float64)
	for _, o := range orders {
		totals[productKey{o.ProductCode, o.ProductLine}] += o.Sales
	}

	result := make([]models.ProductSales, 0, len(totals))
	for k, sales := range totals {
		result = append(result, models.ProductSales{ProductCode: k.code, ProductLine: k.line, Sales: sales})
	}
	slices.SortFunc(result, func(a, b models.ProductSales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ProductCode, b.ProductCode); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductLine, b.ProductLine)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// TotalsByProductLine sums sales per product line. The result is
// ordered by line name, not by sum, so the bar chart keeps a stable
// category order while filters change.
func TotalsByProductLine(orders []models.Order) []models.ProductLineSales {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.ProductLine] += o.Sales
	}

	result := make([]models.ProductLineSales, 0, len(totals))
	for _, line := range slices.Sorted(maps.Keys(totals)) {
		result = append(result, models.ProductLineSales{ProductLine: line, Sales: totals[line]})
	}
	return result
}

// SalesOverTime builds the area chart series. With combineLines a
// single series sums sales per calendar date; otherwise each product
// line gets its own series, sorted by line name. Dates serialize as
// YYYY-MM-DD so string order matches chronological order.
func SalesOverTime(orders []models.Order, combineLines bool) models.TimeSeries {
	if combineLines {
		series := make([]models.Series, 0, 1)
		if len(orders) > 0 {
			series = append(series, models.Series{Label: "Sales", Points: sumByDate(orders)})
		}
		return models.TimeSeries{Combined: true, Series: series}
	}

	byLine := make(map[string][]models.Order)
	for _, o := range orders {
		byLine[o.ProductLine] = append(byLine[o.ProductLine], o)
	}

	series := make([]models.Series, 0, len(byLine))
	for _, line := range slices.Sorted(maps.Keys(byLine)) {
		series = append(series, models.Series{Label: line, Points: sumByDate(byLine[line])})
	}
	return models.TimeSeries{Series: series}
}

func sumByDate(orders []models.Order) []models.TimePoint {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.OrderDate.Format("2006-01-02")] += o.Sales
	}

	points := make([]models.TimePoint, 0, len(totals))
	for _, date := range slices.Sorted(maps.Keys(totals)) {
		points = append(points, models.TimePoint{Date: date, Sales: totals[date]})
	}
	return points
}

// BuildView applies the filter pipeline once and assembles everything
// the dashboard shows for the given selection.
func BuildView(orders []models.Order, f models.FilterSet, combineLines bool) models.DashboardView {
	filtered := ApplyFilters(orders, f)
	return models.DashboardView{
		KPIs:              ComputeKPIs(filtered),
		TopCustomers:      TopCustomers(filtered, topLimit),
		TopProducts:       TopProducts(filtered, topLimit),
		ProductLineTotals: TotalsByProductLine(filtered),
		SalesOverTime:     SalesOverTime(filtered, combineLines),
		RowCount:          len(filtered),
	}
}
