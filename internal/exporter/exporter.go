package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"sales-dashboard/internal/models"
)

// orderHeaders is the column order shared by both export formats.
var orderHeaders = []string{
	"ORDERNUMBER", "ORDERDATE", "STATUS", "PRODUCTLINE", "PRODUCTCODE",
	"CUSTOMERNAME", "COUNTRY", "CITY", "QUANTITYORDERED", "PRICEEACH",
	"SALES", "DEALSIZE",
}

// WriteXLSX writes the filtered rows plus their aggregates as a
// workbook with an Orders sheet and a Summary sheet.
func WriteXLSX(w io.Writer, orders []models.Order, view models.DashboardView) error {
	f := excelize.NewFile()
	defer f.Close()

	ordersSheet := "Orders"
	f.SetSheetName("Sheet1", ordersSheet)

	for i, h := range orderHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ordersSheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(ordersSheet, 1, 1, headerStyle)

	for i, o := range orders {
		row := i + 2
		f.SetCellValue(ordersSheet, fmt.Sprintf("A%d", row), o.OrderNumber)
		f.SetCellValue(ordersSheet, fmt.Sprintf("B%d", row), o.OrderDate.Format("2006-01-02"))
		f.SetCellValue(ordersSheet, fmt.Sprintf("C%d", row), o.Status)
		f.SetCellValue(ordersSheet, fmt.Sprintf("D%d", row), o.ProductLine)
		f.SetCellValue(ordersSheet, fmt.Sprintf("E%d", row), o.ProductCode)
		f.SetCellValue(ordersSheet, fmt.Sprintf("F%d", row), o.CustomerName)
		f.SetCellValue(ordersSheet, fmt.Sprintf("G%d", row), o.Country)
		f.SetCellValue(ordersSheet, fmt.Sprintf("H%d", row), o.City)
		f.SetCellValue(ordersSheet, fmt.Sprintf("I%d", row), o.QuantityOrdered)
		f.SetCellValue(ordersSheet, fmt.Sprintf("J%d", row), o.PriceEach)
		f.SetCellValue(ordersSheet, fmt.Sprintf("K%d", row), o.Sales)
		f.SetCellValue(ordersSheet, fmt.Sprintf("L%d", row), o.DealSize)
	}

	summarySheet := "Summary"
	f.NewSheet(summarySheet)

	summary := [][]any{
		{"Metric", "Value"},
		{"Total Sales", view.KPIs.TotalSales},
		{"Total Orders", view.KPIs.TotalOrders},
		{"Avg Sales per Order", view.KPIs.AvgSalesPerOrder},
		{"Unique Customers", view.KPIs.UniqueCustomers},
		{"Rows Exported", view.RowCount},
		{},
		{"Product Line", "Sales"},
	}
	for _, pl := range view.ProductLineTotals {
		summary = append(summary, []any{pl.ProductLine, pl.Sales})
	}

	for i, row := range summary {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(summarySheet, cell, val)
		}
	}
	f.SetRowStyle(summarySheet, 1, 1, headerStyle)

	f.SetColWidth(ordersSheet, "A", "B", 14)
	f.SetColWidth(ordersSheet, "D", "F", 26)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the filtered rows as UTF-8 CSV. The BOM prefix keeps
// spreadsheet apps from misreading the encoding.
func WriteCSV(w io.Writer, orders []models.Order) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(orderHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, o := range orders {
		record := []string{
			strconv.Itoa(o.OrderNumber),
			o.OrderDate.Format("2006-01-02"),
			o.Status,
			o.ProductLine,
			o.ProductCode,
			o.CustomerName,
			o.Country,
			o.City,
			strconv.Itoa(o.QuantityOrdered),
			strconv.FormatFloat(o.PriceEach, 'f', 2, 64),
			strconv.FormatFloat(o.Sales, 'f', 2, 64),
			o.DealSize,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
