package handlers

import (
	"fmt"
	"net/http"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/exporter"
	"sales-dashboard/internal/observability"
)

// HandleExport streams the filtered rows as a file download. The
// format query selects xlsx (default) or csv; filters use the same
// query parameters as the JSON endpoints.
func (h *APIHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		errors.WriteError(w, h.logger, errors.Validation(fmt.Sprintf("unsupported export format %q", format)), requestID)
		return
	}

	opts, err := h.analytics.FilterOptions(r.Context())
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "dataset unavailable"), requestID)
		return
	}

	params, _, err := queryFilters(r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	f, err := params.resolve(opts)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	orders, err := h.analytics.FilteredOrders(r.Context(), f)
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "dataset unavailable"), requestID)
		return
	}

	name := fmt.Sprintf("sales_%s_%s.%s", f.Start.Format(dateLayout), f.End.Format(dateLayout), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	// Once the body starts streaming the status line is out, so
	// write failures can only be logged.
	switch format {
	case "xlsx":
		view, err := h.analytics.View(r.Context(), f, true)
		if err != nil {
			errors.WriteError(w, h.logger, errors.InternalWrap(err, "dataset unavailable"), requestID)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := exporter.WriteXLSX(w, orders, view); err != nil {
			h.logger.Error("write xlsx export", "error", err, "request_id", requestID)
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := exporter.WriteCSV(w, orders); err != nil {
			h.logger.Error("write csv export", "error", err, "request_id", requestID)
		}
	}
}
