package models

type KPISet struct {
	TotalSales       float64 `json:"total_sales"`
	TotalOrders      int     `json:"total_orders"`
	AvgSalesPerOrder float64 `json:"avg_sales_per_order"`
	UniqueCustomers  int     `json:"unique_customers"`
}

type CustomerSales struct {
	CustomerName string  `json:"customer_name"`
	Sales        float64 `json:"sales"`
}

type ProductSales struct {
	ProductCode string  `json:"product_code"`
	ProductLine string  `json:"product_line"`
	Sales       float64 `json:"sales"`
}

type ProductLineSales struct {
	ProductLine string  `json:"product_line"`
	Sales       float64 `json:"sales"`
}

// TimePoint is one (calendar date, summed sales) sample. Date is the
// YYYY-MM-DD grouping key, which also sorts chronologically as a string.
type TimePoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

type Series struct {
	Label  string      `json:"label"`
	Points []TimePoint `json:"points"`
}

// TimeSeries feeds the area chart: a single combined series, or one
// series per product line when Combined is false.
type TimeSeries struct {
	Combined bool     `json:"combined"`
	Series   []Series `json:"series"`
}

// DashboardView is the full render(table, filters) result handed to the
// presentation layer: exact KPI values plus the chart and table data.
type DashboardView struct {
	KPIs              KPISet             `json:"kpis"`
	TopCustomers      []CustomerSales    `json:"top_customers"`
	TopProducts       []ProductSales     `json:"top_products"`
	ProductLineTotals []ProductLineSales `json:"product_line_totals"`
	SalesOverTime     TimeSeries         `json:"sales_over_time"`
	RowCount          int                `json:"row_count"`
}
