package handlers

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sales-dashboard/internal/models"
)

// countPrinter renders integer KPIs with thousands separators.
var countPrinter = message.NewPrinter(language.English)

// fragmentFuncs holds the display formatting for KPI values. The
// aggregators return exact numbers; the "$1.23M" / "$4.56K" rendering
// happens only here.
var fragmentFuncs = template.FuncMap{
	"millions":  func(v float64) string { return fmt.Sprintf("$%.2fM", v/1e6) },
	"thousands": func(v float64) string { return fmt.Sprintf("$%.2fK", v/1e3) },
	"count":     func(n int) string { return countPrinter.Sprintf("%d", n) },
}

var kpiGridTemplate = template.Must(template.New("kpiGrid").Funcs(fragmentFuncs).Parse(`
<div id="kpi-grid" class="kpi-grid">
<div class="kpi-card"><span class="kpi-label">Total Sales</span><span class="kpi-value">{{millions .TotalSales}}</span></div>
<div class="kpi-card"><span class="kpi-label">Total Orders</span><span class="kpi-value">{{count .TotalOrders}}</span></div>
<div class="kpi-card"><span class="kpi-label">Avg Sales per Order</span><span class="kpi-value">{{thousands .AvgSalesPerOrder}}</span></div>
<div class="kpi-card"><span class="kpi-label">Unique Customers</span><span class="kpi-value">{{count .UniqueCustomers}}</span></div>
</div>`))

var customersTableTemplate = template.Must(template.New("customersTable").Parse(`
<div id="customers-content">
<table class="modern-table">
<thead><tr><th>Customer</th><th>Sales</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.CustomerName}}</td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var productsTableTemplate = template.Must(template.New("productsTable").Parse(`
<div id="products-content">
<table class="modern-table">
<thead><tr><th>Product Code</th><th>Product Line</th><th>Sales</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.ProductCode}}</td>
<td><span class="category-badge">{{.ProductLine}}</span></td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var productLinesTableTemplate = template.Must(template.New("productLinesTable").Parse(`
<div id="lines-content">
<table class="modern-table">
<thead><tr><th>Product Line</th><th>Sales</th></tr></thead>
<tbody>
{{range .}}<tr>
<td><span class="category-badge">{{.ProductLine}}</span></td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

func renderFragment(t *template.Template, data any) (string, error) {
	var buf strings.Builder
	err := t.Execute(&buf, data)
	return buf.String(), err
}

// renderViewFragments renders every HTML patch for one pipeline run,
// in patch order: KPI grid first, then the three summary tables.
func renderViewFragments(view models.DashboardView) ([]string, error) {
	fragments := []struct {
		tmpl *template.Template
		data any
	}{
		{kpiGridTemplate, view.KPIs},
		{customersTableTemplate, view.TopCustomers},
		{productsTableTemplate, view.TopProducts},
		{productLinesTableTemplate, view.ProductLineTotals},
	}

	rendered := make([]string, 0, len(fragments))
	for _, f := range fragments {
		html, err := renderFragment(f.tmpl, f.data)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, html)
	}
	return rendered, nil
}
