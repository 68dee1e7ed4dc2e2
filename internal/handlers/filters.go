package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
)

// dateLayout is the wire format for filter dates, matching the HTML
// date input value format.
const dateLayout = "2006-01-02"

// filterParams is the raw filter selection before date parsing,
// collected either from API query parameters or from datastar signals.
type filterParams struct {
	Start        string
	End          string
	ProductLines []string
	Countries    []string
	Statuses     []string
}

// resolve validates the raw selection against the dataset bounds.
// Missing dates default to the full range; unknown categorical values
// pass through and simply match nothing.
func (p filterParams) resolve(opts models.FilterOptions) (models.FilterSet, error) {
	f := models.FilterSet{
		Start:        opts.MinDate,
		End:          opts.MaxDate,
		ProductLines: p.ProductLines,
		Countries:    p.Countries,
		Statuses:     p.Statuses,
	}

	if p.Start != "" {
		t, err := time.Parse(dateLayout, p.Start)
		if err != nil {
			return f, errors.Validation(fmt.Sprintf("invalid start date %q, want YYYY-MM-DD", p.Start))
		}
		f.Start = t
	}
	if p.End != "" {
		t, err := time.Parse(dateLayout, p.End)
		if err != nil {
			return f, errors.Validation(fmt.Sprintf("invalid end date %q, want YYYY-MM-DD", p.End))
		}
		f.End = t
	}
	if f.Start.After(f.End) {
		return f, errors.Validation("start date must not be after end date")
	}

	return f, nil
}

// queryFilters reads the selection from API query parameters. The
// categorical parameters repeat (?country=USA&country=France); combine
// defaults to a single merged chart series.
func queryFilters(q url.Values) (filterParams, bool, error) {
	p := filterParams{
		Start:        q.Get("start"),
		End:          q.Get("end"),
		ProductLines: q["product_line"],
		Countries:    q["country"],
		Statuses:     q["status"],
	}

	combine := true
	if v := q.Get("combine"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, false, errors.Validation(fmt.Sprintf("invalid combine value %q", v))
		}
		combine = b
	}

	return p, combine, nil
}
