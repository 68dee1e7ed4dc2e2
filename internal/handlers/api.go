package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// buildView resolves the request's filter selection and runs the
// pipeline. Everything the JSON endpoints serve derives from it.
func (h *APIHandlers) buildView(r *http.Request) (models.DashboardView, error) {
	ctx := r.Context()

	opts, err := h.analytics.FilterOptions(ctx)
	if err != nil {
		return models.DashboardView{}, errors.InternalWrap(err, "dataset unavailable")
	}

	params, combine, err := queryFilters(r.URL.Query())
	if err != nil {
		return models.DashboardView{}, err
	}
	f, err := params.resolve(opts)
	if err != nil {
		return models.DashboardView{}, err
	}

	view, err := h.analytics.View(ctx, f, combine)
	if err != nil {
		return models.DashboardView{}, errors.InternalWrap(err, "dataset unavailable")
	}

	return view, nil
}

func (h *APIHandlers) writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
}

func (h *APIHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view, headers)
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view.KPIs, headers)
}

func (h *APIHandlers) HandleTopCustomers(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view.TopCustomers, headers)
}

func (h *APIHandlers) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view.TopProducts, headers)
}

func (h *APIHandlers) HandleProductLines(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view.ProductLineTotals, headers)
}

func (h *APIHandlers) HandleSalesOverTime(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, view.SalesOverTime, headers)
}

func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.analytics.FilterOptions(r.Context())
	if err != nil {
		h.writeViewError(w, r, errors.InternalWrap(err, "dataset unavailable"))
		return
	}

	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, opts, headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		h.writeViewError(w, r, errors.InternalWrap(err, "dataset unavailable"))
		return
	}

	errors.WriteSuccess(w, stats)
}
