package services

import "sales-dashboard/internal/models"

// ComputeKPIs aggregates the headline figures for a set of orders.
// One order spans multiple line rows in the source data, so the order
// count is distinct ORDERNUMBER values and the average divides by
// orders, not rows. An empty input yields the zero KPISet.
func ComputeKPIs(orders []models.Order) models.KPISet {
	var totalSales float64
	orderNumbers := make(map[int]struct{})
	customers := make(map[string]struct{})

	for _, o := range orders {
		totalSales += o.Sales
		orderNumbers[o.OrderNumber] = struct{}{}
		customers[o.CustomerName] = struct{}{}
	}

	kpis := models.KPISet{
		TotalSales:      totalSales,
		TotalOrders:     len(orderNumbers),
		UniqueCustomers: len(customers),
	}
	if kpis.TotalOrders > 0 {
		kpis.AvgSalesPerOrder = totalSales / float64(kpis.TotalOrders)
	}
	return kpis
}
