package templates

import (
	"encoding/json"
	"fmt"

	"sales-dashboard/internal/models"
)

// DashboardProps carries everything the page shell needs at render
// time: the sidebar options and the initial datastar signal state.
type DashboardProps struct {
	Options models.FilterOptions
	Signals string
}

// NewDashboardProps builds the initial signal state: the full date
// range, every product line selected, no country or status exclusions,
// and an empty chart that the first /sse/dashboard patch fills in.
func NewDashboardProps(opts models.FilterOptions) (DashboardProps, error) {
	signals, err := json.Marshal(map[string]any{
		"start":        opts.MinDate.Format("2006-01-02"),
		"end":          opts.MaxDate.Format("2006-01-02"),
		"productLines": opts.ProductLines,
		"countries":    []string{},
		"statuses":     []string{},
		"combine":      true,
		"chart":        models.TimeSeries{Combined: true, Series: []models.Series{}},
		"rowCount":     0,
	})
	if err != nil {
		return DashboardProps{}, fmt.Errorf("marshal initial signals: %w", err)
	}

	return DashboardProps{
		Options: opts,
		Signals: string(signals),
	}, nil
}
