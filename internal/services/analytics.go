package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/models"
)

// Analytics answers dashboard queries against the loaded order table.
// All methods are safe for concurrent use: the table is immutable after
// the first load and every query works on per-call slices.
type Analytics struct {
	source dataset.Source
	logger *slog.Logger
}

func NewAnalytics(source dataset.Source, logger *slog.Logger) *Analytics {
	return &Analytics{source: source, logger: logger}
}

// Dataset returns the full order table through the memoized loader.
func (a *Analytics) Dataset(ctx context.Context) ([]models.Order, error) {
	return a.source.Load(ctx)
}

// View runs the filter-and-aggregate pipeline for one selection.
func (a *Analytics) View(ctx context.Context, f models.FilterSet, combineLines bool) (models.DashboardView, error) {
	orders, err := a.source.Load(ctx)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("load dataset: %w", err)
	}
	return BuildView(orders, f, combineLines), nil
}

// FilteredOrders returns the rows matching the selection, for export.
func (a *Analytics) FilteredOrders(ctx context.Context, f models.FilterSet) ([]models.Order, error) {
	orders, err := a.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ApplyFilters(orders, f), nil
}

// FilterOptions lists the distinct filterable values and the date
// bounds of the table. It feeds the sidebar controls and the default
// selection (full date range, nothing excluded).
func (a *Analytics) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	orders, err := a.source.Load(ctx)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("load dataset: %w", err)
	}

	lines := make(map[string]struct{})
	countries := make(map[string]struct{})
	statuses := make(map[string]struct{})
	var minDate, maxDate time.Time

	for i, o := range orders {
		lines[o.ProductLine] = struct{}{}
		countries[o.Country] = struct{}{}
		statuses[o.Status] = struct{}{}
		if i == 0 || o.OrderDate.Before(minDate) {
			minDate = o.OrderDate
		}
		if i == 0 || o.OrderDate.After(maxDate) {
			maxDate = o.OrderDate
		}
	}

	return models.FilterOptions{
		MinDate:      minDate,
		MaxDate:      maxDate,
		ProductLines: slices.Sorted(maps.Keys(lines)),
		Countries:    slices.Sorted(maps.Keys(countries)),
		Statuses:     slices.Sorted(maps.Keys(statuses)),
	}, nil
}

// Stats summarizes the loaded table for the admin endpoint.
func (a *Analytics) Stats(ctx context.Context) (map[string]any, error) {
	orders, err := a.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	// Cache hit, the table is already loaded.
	opts, err := a.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"row_count":     len(orders),
		"product_lines": len(opts.ProductLines),
		"countries":     len(opts.Countries),
		"statuses":      len(opts.Statuses),
		"min_date":      opts.MinDate.Format("2006-01-02"),
		"max_date":      opts.MaxDate.Format("2006-01-02"),
		"loaded_at":     a.source.LoadedAt(),
	}, nil
}
