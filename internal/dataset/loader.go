package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/models"
)

const (
	batchSize  = 1000
	maxWorkers = 8
)

// requiredColumns must all be present in the CSV header. Matching is
// case-insensitive and ignores surrounding whitespace.
var requiredColumns = []string{
	"ORDERNUMBER", "ORDERDATE", "SALES", "CUSTOMERNAME",
	"PRODUCTCODE", "PRODUCTLINE", "COUNTRY", "STATUS",
}

// orderDateLayouts lists the accepted ORDERDATE formats. The upstream
// dataset serializes dates as "M/D/YYYY H:MM"; the other layouts
// tolerate exports that drop the time component or use ISO dates.
var orderDateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02",
}

// Source provides the order table to consumers. *Loader satisfies it;
// tests substitute fixed in-memory tables.
type Source interface {
	Load(ctx context.Context) ([]models.Order, error)
	LoadedAt() time.Time
}

// Loader fetches the remote sales CSV and converts it into orders.
// The first successful load is memoized for the lifetime of the
// process; subsequent calls return the cached slice without touching
// the network. Failed loads are not cached, so callers retry on the
// next request.
type Loader struct {
	client   *http.Client
	url      string
	encoding string
	logger   *slog.Logger

	mu       sync.Mutex
	orders   []models.Order
	loadedAt time.Time
}

func NewLoader(cfg config.DatasetConfig, logger *slog.Logger) *Loader {
	return &Loader{
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		url:      cfg.URL,
		encoding: strings.ToLower(cfg.Encoding),
		logger:   logger,
	}
}

// Load returns the full dataset, fetching and parsing it on first use.
// The returned slice is shared across callers and must not be mutated.
func (l *Loader) Load(ctx context.Context) ([]models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.orders != nil {
		return l.orders, nil
	}

	start := time.Now()
	l.logger.Info("fetching dataset", "url", l.url)

	records, err := l.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}

	orders, err := parseRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	l.orders = orders
	l.loadedAt = time.Now()

	duration := time.Since(start)
	l.logger.Info("dataset loaded",
		"orders", len(orders),
		"duration", duration,
		"rate", fmt.Sprintf("%.0f rows/sec", float64(len(orders))/duration.Seconds()))

	return l.orders, nil
}

// LoadedAt reports when the cached dataset was parsed. The zero time
// means no successful load has completed yet.
func (l *Loader) LoadedAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadedAt
}

func (l *Loader) fetch(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, l.url)
	}

	var body io.Reader = resp.Body
	if l.encoding == "latin1" {
		body = charmap.ISO8859_1.NewDecoder().Reader(resp.Body)
	}

	records, err := csv.NewReader(body).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv body")
	}

	return records, nil
}

// parseRecords converts raw CSV records into orders. Rows are parsed in
// bounded parallel batches, each goroutine writing a disjoint range of
// the result slice. Any malformed row fails the whole load.
func parseRecords(ctx context.Context, records [][]string) ([]models.Order, error) {
	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	orders := make([]models.Order, len(rows))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for begin := 0; begin < len(rows); begin += batchSize {
		end := min(begin+batchSize, len(rows))
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			for i := begin; i < end; i++ {
				order, err := parseOrder(rows[i], cols)
				if err != nil {
					return fmt.Errorf("row %d: %w", i+2, err)
				}
				orders[i] = order
			}
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	return orders, nil
}

// columns maps each logical field to its index in the CSV header, or
// -1 when the optional column is absent.
type columns struct {
	orderNumber     int
	orderLineNumber int
	orderDate       int
	sales           int
	quantityOrdered int
	priceEach       int
	customerName    int
	productCode     int
	productLine     int
	city            int
	country         int
	status          int
	dealSize        int
}

func mapColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return columns{}, fmt.Errorf("missing required column %s", name)
		}
	}

	lookup := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}

	return columns{
		orderNumber:     lookup("ORDERNUMBER"),
		orderLineNumber: lookup("ORDERLINENUMBER"),
		orderDate:       lookup("ORDERDATE"),
		sales:           lookup("SALES"),
		quantityOrdered: lookup("QUANTITYORDERED"),
		priceEach:       lookup("PRICEEACH"),
		customerName:    lookup("CUSTOMERNAME"),
		productCode:     lookup("PRODUCTCODE"),
		productLine:     lookup("PRODUCTLINE"),
		city:            lookup("CITY"),
		country:         lookup("COUNTRY"),
		status:          lookup("STATUS"),
		dealSize:        lookup("DEALSIZE"),
	}, nil
}

func parseOrder(record []string, cols columns) (models.Order, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	orderNumber, err := strconv.Atoi(field(cols.orderNumber))
	if err != nil {
		return models.Order{}, fmt.Errorf("ORDERNUMBER: %w", err)
	}

	orderDate, err := parseOrderDate(field(cols.orderDate))
	if err != nil {
		return models.Order{}, fmt.Errorf("ORDERDATE: %w", err)
	}

	sales, err := strconv.ParseFloat(field(cols.sales), 64)
	if err != nil {
		return models.Order{}, fmt.Errorf("SALES: %w", err)
	}

	order := models.Order{
		OrderNumber:  orderNumber,
		OrderDate:    orderDate,
		Sales:        sales,
		CustomerName: field(cols.customerName),
		ProductCode:  field(cols.productCode),
		ProductLine:  field(cols.productLine),
		City:         field(cols.city),
		Country:      field(cols.country),
		Status:       field(cols.status),
		DealSize:     field(cols.dealSize),
	}

	// Optional numeric columns keep their zero value when absent.
	if v := field(cols.orderLineNumber); v != "" {
		if order.OrderLineNumber, err = strconv.Atoi(v); err != nil {
			return models.Order{}, fmt.Errorf("ORDERLINENUMBER: %w", err)
		}
	}
	if v := field(cols.quantityOrdered); v != "" {
		if order.QuantityOrdered, err = strconv.Atoi(v); err != nil {
			return models.Order{}, fmt.Errorf("QUANTITYORDERED: %w", err)
		}
	}
	if v := field(cols.priceEach); v != "" {
		if order.PriceEach, err = strconv.ParseFloat(v, 64); err != nil {
			return models.Order{}, fmt.Errorf("PRICEEACH: %w", err)
		}
	}

	return order, nil
}

// parseOrderDate normalizes every accepted layout to midnight UTC so
// date-range filtering stays calendar-based.
func parseOrderDate(value string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
