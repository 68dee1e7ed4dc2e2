package services

import (
	"math/rand"
	"testing"
	"time"

	"sales-dashboard/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// scenarioOrders is the worked example used across the pipeline tests:
// two January rows for distinct customers plus one February row.
func scenarioOrders() []models.Order {
	return []models.Order{
		{OrderNumber: 1, OrderDate: day(2024, 1, 1), Sales: 100, CustomerName: "A", ProductCode: "P1", ProductLine: "Vans", Country: "USA", Status: "Shipped"},
		{OrderNumber: 2, OrderDate: day(2024, 1, 2), Sales: 200, CustomerName: "B", ProductCode: "P2", ProductLine: "Trucks", Country: "France", Status: "Shipped"},
		{OrderNumber: 3, OrderDate: day(2024, 2, 1), Sales: 50, CustomerName: "A", ProductCode: "P1", ProductLine: "Vans", Country: "USA", Status: "Cancelled"},
	}
}

func TestFilterByValues_EmptyListIsIdentity(t *testing.T) {
	orders := scenarioOrders()
	got := FilterByValues(orders, nil, func(o models.Order) string { return o.Country })

	if len(got) != len(orders) {
		t.Fatalf("empty list should keep all %d rows, got %d", len(orders), len(got))
	}
	// Identity, not a copy: no restriction means the input passes through.
	if &got[0] != &orders[0] {
		t.Error("empty list should return the input slice unchanged")
	}
}

func TestFilterByValues_Completeness(t *testing.T) {
	orders := scenarioOrders()
	allowed := []string{"USA"}
	got := FilterByValues(orders, allowed, func(o models.Order) string { return o.Country })

	for _, o := range got {
		if o.Country != "USA" {
			t.Errorf("row with country %q should have been filtered out", o.Country)
		}
	}

	want := 0
	for _, o := range orders {
		if o.Country == "USA" {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("kept %d rows, want %d (no matching row may be dropped)", len(got), want)
	}
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	orders := scenarioOrders()

	got := FilterByDateRange(orders, day(2024, 1, 1), day(2024, 1, 31))
	if len(got) != 2 {
		t.Fatalf("January range should keep 2 rows, got %d", len(got))
	}
	if got[0].OrderNumber != 1 || got[1].OrderNumber != 2 {
		t.Errorf("wrong rows kept: %v, %v", got[0].OrderNumber, got[1].OrderNumber)
	}

	// Both bounds are inclusive: a range collapsing to one day keeps
	// the row on that day.
	single := FilterByDateRange(orders, day(2024, 1, 2), day(2024, 1, 2))
	if len(single) != 1 || single[0].OrderNumber != 2 {
		t.Errorf("single-day range should keep exactly order 2, got %v", single)
	}
}

func TestFilterByDateRange_Idempotent(t *testing.T) {
	orders := scenarioOrders()
	start, end := day(2024, 1, 1), day(2024, 1, 31)

	once := FilterByDateRange(orders, start, end)
	twice := FilterByDateRange(once, start, end)

	if len(once) != len(twice) {
		t.Fatalf("second application changed row count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("row %d differs after second application", i)
		}
	}
}

func TestApplyFilters_FixedOrderAndNoMutation(t *testing.T) {
	orders := scenarioOrders()
	f := models.FilterSet{
		Start:        day(2024, 1, 1),
		End:          day(2024, 2, 28),
		ProductLines: []string{"Vans"},
		Countries:    []string{"USA"},
		Statuses:     []string{"Shipped"},
	}

	got := ApplyFilters(orders, f)
	if len(got) != 1 || got[0].OrderNumber != 1 {
		t.Fatalf("expected only order 1 to survive, got %v", got)
	}

	// The input must be untouched.
	if len(orders) != 3 || orders[2].OrderNumber != 3 {
		t.Error("ApplyFilters mutated its input")
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := ComputeKPIs(nil)

	if kpis.TotalSales != 0 {
		t.Errorf("TotalSales = %f, want 0", kpis.TotalSales)
	}
	if kpis.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", kpis.TotalOrders)
	}
	if kpis.AvgSalesPerOrder != 0 {
		t.Errorf("AvgSalesPerOrder = %f, want 0 (never a division error)", kpis.AvgSalesPerOrder)
	}
	if kpis.UniqueCustomers != 0 {
		t.Errorf("UniqueCustomers = %d, want 0", kpis.UniqueCustomers)
	}
}

func TestComputeKPIs_Scenario(t *testing.T) {
	filtered := FilterByDateRange(scenarioOrders(), day(2024, 1, 1), day(2024, 1, 31))
	kpis := ComputeKPIs(filtered)

	if kpis.TotalSales != 300 {
		t.Errorf("TotalSales = %f, want 300", kpis.TotalSales)
	}
	if kpis.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", kpis.TotalOrders)
	}
	if kpis.AvgSalesPerOrder != 150 {
		t.Errorf("AvgSalesPerOrder = %f, want 150", kpis.AvgSalesPerOrder)
	}
	if kpis.UniqueCustomers != 2 {
		t.Errorf("UniqueCustomers = %d, want 2", kpis.UniqueCustomers)
	}
}

func TestComputeKPIs_DistinctOrderNumbers(t *testing.T) {
	// Two line rows of the same order count as one order.
	orders := []models.Order{
		{OrderNumber: 10, Sales: 100, CustomerName: "A"},
		{OrderNumber: 10, Sales: 50, CustomerName: "A"},
		{OrderNumber: 11, Sales: 50, CustomerName: "B"},
	}

	kpis := ComputeKPIs(orders)
	if kpis.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", kpis.TotalOrders)
	}
	if kpis.TotalSales != 200 {
		t.Errorf("TotalSales = %f, want 200", kpis.TotalSales)
	}
	if kpis.AvgSalesPerOrder != 100 {
		t.Errorf("AvgSalesPerOrder = %f, want 100 (divide by orders, not rows)", kpis.AvgSalesPerOrder)
	}
}

func TestComputeKPIs_CrossCheckNaiveSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	orders := make([]models.Order, 500)
	for i := range orders {
		orders[i] = models.Order{
			OrderNumber:  rng.Intn(100),
			Sales:        float64(rng.Intn(100000)) / 100,
			CustomerName: string(rune('A' + rng.Intn(26))),
		}
	}

	var naive float64
	for _, o := range orders {
		naive += o.Sales
	}

	kpis := ComputeKPIs(orders)
	if kpis.TotalSales != naive {
		t.Errorf("TotalSales = %f, naive sum = %f", kpis.TotalSales, naive)
	}
}

func TestTopCustomers_Scenario(t *testing.T) {
	filtered := FilterByDateRange(scenarioOrders(), day(2024, 1, 1), day(2024, 1, 31))
	top := TopCustomers(filtered, 10)

	if len(top) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(top))
	}
	if top[0].CustomerName != "B" || top[0].Sales != 200 {
		t.Errorf("top[0] = %+v, want B with 200", top[0])
	}
	if top[1].CustomerName != "A" || top[1].Sales != 100 {
		t.Errorf("top[1] = %+v, want A with 100", top[1])
	}
}

func TestTopCustomers_TruncationAndOrder(t *testing.T) {
	orders := make([]models.Order, 0, 15)
	for i := 0; i < 15; i++ {
		orders = append(orders, models.Order{
			CustomerName: string(rune('A' + i)),
			Sales:        float64((i + 1) * 10),
		})
	}

	top := TopCustomers(orders, 10)
	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Sales < top[i].Sales {
			t.Errorf("entries %d and %d out of descending order: %f < %f", i-1, i, top[i-1].Sales, top[i].Sales)
		}
	}
	if top[0].Sales != 150 {
		t.Errorf("top entry sales = %f, want 150", top[0].Sales)
	}
}

func TestTopCustomers_TieBreakByName(t *testing.T) {
	orders := []models.Order{
		{CustomerName: "Zeta", Sales: 100},
		{CustomerName: "Alpha", Sales: 100},
	}

	top := TopCustomers(orders, 10)
	if top[0].CustomerName != "Alpha" || top[1].CustomerName != "Zeta" {
		t.Errorf("equal sums must order by name ascending, got %q then %q", top[0].CustomerName, top[1].CustomerName)
	}
}

func TestTopCustomers_AggregatesAcrossRows(t *testing.T) {
	orders := []models.Order{
		{CustomerName: "A", Sales: 60},
		{CustomerName: "A", Sales: 50},
		{CustomerName: "B", Sales: 100},
	}

	top := TopCustomers(orders, 10)
	if top[0].CustomerName != "A" || top[0].Sales != 110 {
		t.Errorf("top[0] = %+v, want A with 110", top[0])
	}
}

func TestTopProducts_GroupsByCodeAndLine(t *testing.T) {
	orders := []models.Order{
		{ProductCode: "P1", ProductLine: "Vans", Sales: 100},
		{ProductCode: "P1", ProductLine: "Vans", Sales: 40},
		{ProductCode: "P1", ProductLine: "Trucks", Sales: 10},
		{ProductCode: "P2", ProductLine: "Vans", Sales: 90},
	}

	top := TopProducts(orders, 10)
	if len(top) != 3 {
		t.Fatalf("expected 3 product groups, got %d", len(top))
	}
	if top[0].ProductCode != "P1" || top[0].ProductLine != "Vans" || top[0].Sales != 140 {
		t.Errorf("top[0] = %+v, want P1/Vans with 140", top[0])
	}
	if top[1].ProductCode != "P2" || top[1].Sales != 90 {
		t.Errorf("top[1] = %+v, want P2/Vans with 90", top[1])
	}
}

func TestTopProducts_Truncation(t *testing.T) {
	orders := make([]models.Order, 0, 12)
	for i := 0; i < 12; i++ {
		orders = append(orders, models.Order{
			ProductCode: string(rune('A' + i)),
			ProductLine: "Vans",
			Sales:       float64(i),
		})
	}

	if got := len(TopProducts(orders, 10)); got != 10 {
		t.Errorf("expected 10 entries, got %d", got)
	}
}

func TestTotalsByProductLine_OrderedByName(t *testing.T) {
	filtered := FilterByDateRange(scenarioOrders(), day(2024, 1, 1), day(2024, 1, 31))
	totals := TotalsByProductLine(filtered)

	if len(totals) != 2 {
		t.Fatalf("expected 2 product lines, got %d", len(totals))
	}
	// Ordered by line name ascending, not by sum: Trucks (200) before
	// Vans (100) alphabetically even though it also has the larger sum;
	// the next case pins the name order against the sum order.
	if totals[0].ProductLine != "Trucks" || totals[0].Sales != 200 {
		t.Errorf("totals[0] = %+v, want Trucks with 200", totals[0])
	}
	if totals[1].ProductLine != "Vans" || totals[1].Sales != 100 {
		t.Errorf("totals[1] = %+v, want Vans with 100", totals[1])
	}
}

func TestTotalsByProductLine_NotSortedBySum(t *testing.T) {
	orders := []models.Order{
		{ProductLine: "Planes", Sales: 10},
		{ProductLine: "Boats", Sales: 999},
	}

	totals := TotalsByProductLine(orders)
	if totals[0].ProductLine != "Boats" {
		t.Errorf("first entry = %q, want Boats (alphabetical, regardless of sum)", totals[0].ProductLine)
	}
}

func TestSalesOverTime_Combined(t *testing.T) {
	orders := []models.Order{
		{OrderDate: day(2024, 2, 1), ProductLine: "Vans", Sales: 50},
		{OrderDate: day(2024, 1, 1), ProductLine: "Vans", Sales: 100},
		{OrderDate: day(2024, 1, 1), ProductLine: "Trucks", Sales: 200},
	}

	ts := SalesOverTime(orders, true)
	if !ts.Combined {
		t.Error("Combined flag should be set")
	}
	if len(ts.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(ts.Series))
	}

	points := ts.Series[0].Points
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2024-01-01" || points[0].Sales != 300 {
		t.Errorf("points[0] = %+v, want 2024-01-01 with 300", points[0])
	}
	if points[1].Date != "2024-02-01" || points[1].Sales != 50 {
		t.Errorf("points[1] = %+v, want 2024-02-01 with 50", points[1])
	}
}

func TestSalesOverTime_PerProductLine(t *testing.T) {
	orders := []models.Order{
		{OrderDate: day(2024, 1, 2), ProductLine: "Vans", Sales: 50},
		{OrderDate: day(2024, 1, 1), ProductLine: "Vans", Sales: 100},
		{OrderDate: day(2024, 1, 1), ProductLine: "Trucks", Sales: 200},
	}

	ts := SalesOverTime(orders, false)
	if ts.Combined {
		t.Error("Combined flag should be unset")
	}
	if len(ts.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(ts.Series))
	}
	if ts.Series[0].Label != "Trucks" || ts.Series[1].Label != "Vans" {
		t.Errorf("series order = %q, %q; want Trucks, Vans", ts.Series[0].Label, ts.Series[1].Label)
	}

	vans := ts.Series[1].Points
	if len(vans) != 2 || vans[0].Date != "2024-01-01" || vans[1].Date != "2024-01-02" {
		t.Errorf("Vans points not sorted by date: %+v", vans)
	}
}

func TestSalesOverTime_Empty(t *testing.T) {
	for _, combined := range []bool{true, false} {
		ts := SalesOverTime(nil, combined)
		if len(ts.Series) != 0 {
			t.Errorf("combined=%v: expected no series for empty input, got %d", combined, len(ts.Series))
		}
	}
}

func TestBuildView(t *testing.T) {
	f := models.FilterSet{Start: day(2024, 1, 1), End: day(2024, 1, 31)}
	view := BuildView(scenarioOrders(), f, true)

	if view.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", view.RowCount)
	}
	if view.KPIs.TotalSales != 300 {
		t.Errorf("KPIs.TotalSales = %f, want 300", view.KPIs.TotalSales)
	}
	if len(view.TopCustomers) != 2 {
		t.Errorf("TopCustomers has %d entries, want 2", len(view.TopCustomers))
	}
	if len(view.ProductLineTotals) != 2 {
		t.Errorf("ProductLineTotals has %d entries, want 2", len(view.ProductLineTotals))
	}
	if !view.SalesOverTime.Combined || len(view.SalesOverTime.Series) != 1 {
		t.Errorf("SalesOverTime = %+v, want one combined series", view.SalesOverTime)
	}
}

func TestBuildView_EmptyResult(t *testing.T) {
	// A range before any order matches nothing; everything degrades to
	// zero values, never an error.
	f := models.FilterSet{Start: day(2020, 1, 1), End: day(2020, 12, 31)}
	view := BuildView(scenarioOrders(), f, false)

	if view.RowCount != 0 {
		t.Errorf("RowCount = %d, want 0", view.RowCount)
	}
	if view.KPIs != (models.KPISet{}) {
		t.Errorf("KPIs = %+v, want zero values", view.KPIs)
	}
	if len(view.TopCustomers) != 0 || len(view.TopProducts) != 0 || len(view.ProductLineTotals) != 0 {
		t.Error("summaries should be empty")
	}
	if len(view.SalesOverTime.Series) != 0 {
		t.Error("time series should be empty")
	}
}

// Benchmarks over a realistically sized table.
func benchmarkOrders(n int) []models.Order {
	rng := rand.New(rand.NewSource(1))
	lines := []string{"Classic Cars", "Motorcycles", "Planes", "Ships", "Trains", "Trucks and Buses", "Vintage Cars"}
	countries := []string{"USA", "France", "Norway", "Australia", "Finland", "Austria", "UK"}
	statuses := []string{"Shipped", "Cancelled", "On Hold", "Disputed", "In Process", "Resolved"}

	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{
			OrderNumber:  10000 + rng.Intn(300),
			OrderDate:    day(2003, time.Month(1+rng.Intn(12)), 1+rng.Intn(28)),
			Sales:        float64(rng.Intn(1000000)) / 100,
			CustomerName: countries[rng.Intn(len(countries))] + " Trading Co.",
			ProductCode:  "S" + string(rune('0'+rng.Intn(10))) + "_" + string(rune('0'+rng.Intn(10))),
			ProductLine:  lines[rng.Intn(len(lines))],
			Country:      countries[rng.Intn(len(countries))],
			Status:       statuses[rng.Intn(len(statuses))],
		}
	}
	return orders
}

func BenchmarkApplyFilters(b *testing.B) {
	orders := benchmarkOrders(2800)
	f := models.FilterSet{
		Start:        day(2003, 1, 1),
		End:          day(2003, 12, 31),
		ProductLines: []string{"Classic Cars", "Motorcycles"},
	}

	b.ResetTimer()
	for b.Loop() {
		_ = ApplyFilters(orders, f)
	}
}

func BenchmarkBuildView(b *testing.B) {
	orders := benchmarkOrders(2800)
	f := models.FilterSet{Start: day(2003, 1, 1), End: day(2003, 12, 31)}

	b.ResetTimer()
	for b.Loop() {
		_ = BuildView(orders, f, true)
	}
}
