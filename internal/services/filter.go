package services

import (
	"slices"
	"time"

	"sales-dashboard/internal/models"
)

// FilterByDateRange keeps orders whose date falls inside the inclusive
// [start, end] calendar range.
func FilterByDateRange(orders []models.Order, start, end time.Time) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// FilterByValues keeps orders whose key is a member of allowed. An
// empty allowed list means no restriction and returns the input as is.
func FilterByValues(orders []models.Order, allowed []string, key func(models.Order) string) []models.Order {
	if len(allowed) == 0 {
		return orders
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if slices.Contains(allowed, key(o)) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// ApplyFilters runs the filter pipeline in its fixed order: date range,
// then product line, country, and status inclusion lists. No step
// mutates its input.
func ApplyFilters(orders []models.Order, f models.FilterSet) []models.Order {
	result := FilterByDateRange(orders, f.Start, f.End)
	result = FilterByValues(result, f.ProductLines, func(o models.Order) string { return o.ProductLine })
	result = FilterByValues(result, f.Countries, func(o models.Order) string { return o.Country })
	result = FilterByValues(result, f.Statuses, func(o models.Order) string { return o.Status })
	return result
}
