package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

// dashboardSignals mirrors the page's datastar signal state. Field
// names match the camelCase signal names the browser sends back.
type dashboardSignals struct {
	Start        string   `json:"start"`
	End          string   `json:"end"`
	ProductLines []string `json:"productLines"`
	Countries    []string `json:"countries"`
	Statuses     []string `json:"statuses"`
	Combine      bool     `json:"combine"`
}

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// requestFilters reads the filter signals sent by the page and
// resolves them against the dataset bounds. A request without signals
// falls back to the default selection (full range, nothing excluded).
func (h *SSEHandlers) requestFilters(r *http.Request) (models.FilterSet, bool, error) {
	opts, err := h.analytics.FilterOptions(r.Context())
	if err != nil {
		return models.FilterSet{}, false, errors.InternalWrap(err, "dataset unavailable")
	}

	signals := dashboardSignals{Combine: true}
	if r.URL.Query().Has("datastar") {
		if err := datastar.ReadSignals(r, &signals); err != nil {
			return models.FilterSet{}, false, errors.BadRequestWrap(err, "invalid filter signals")
		}
	}

	params := filterParams{
		Start:        signals.Start,
		End:          signals.End,
		ProductLines: signals.ProductLines,
		Countries:    signals.Countries,
		Statuses:     signals.Statuses,
	}
	f, err := params.resolve(opts)
	if err != nil {
		return models.FilterSet{}, false, err
	}

	return f, signals.Combine, nil
}

// HandleDashboard re-runs the whole pipeline for the current filter
// selection and patches the KPI grid, the three summary tables, and
// the chart signal in one SSE response.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	f, combine, err := h.requestFilters(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	view, err := h.analytics.View(r.Context(), f, combine)
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "dataset unavailable"), requestID)
		return
	}

	fragments, err := renderViewFragments(view)
	if err != nil {
		h.logger.Error("render dashboard fragments", "error", err, "request_id", requestID)
		errors.WriteError(w, h.logger, errors.Internal("render failed"), requestID)
		return
	}

	sse := datastar.NewSSE(w, r)

	for _, html := range fragments {
		sse.PatchElements(html)
	}

	signals, err := json.Marshal(map[string]any{
		"chart":    view.SalesOverTime,
		"rowCount": view.RowCount,
	})
	if err != nil {
		h.logger.Error("marshal chart signals", "error", err, "request_id", requestID)
		return
	}
	sse.PatchSignals(signals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

// HandleChart patches only the chart signal. The combine toggle uses
// it so flipping the series grouping skips the table re-render.
func (h *SSEHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	f, combine, err := h.requestFilters(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	orders, err := h.analytics.FilteredOrders(r.Context(), f)
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "dataset unavailable"), requestID)
		return
	}

	signals, err := json.Marshal(map[string]any{
		"chart":    services.SalesOverTime(orders, combine),
		"rowCount": len(orders),
	})
	if err != nil {
		h.logger.Error("marshal chart signals", "error", err, "request_id", requestID)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchSignals(signals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}
