package handlers

import (
	"net/url"
	"testing"
	"time"

	"sales-dashboard/internal/models"
)

func testFilterOptions() models.FilterOptions {
	return models.FilterOptions{
		MinDate:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		MaxDate:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		ProductLines: []string{"Classic Cars", "Vintage Cars"},
		Countries:    []string{"Spain", "USA"},
		Statuses:     []string{"Cancelled", "Shipped"},
	}
}

func TestFilterParams_Resolve(t *testing.T) {
	opts := testFilterOptions()

	tests := []struct {
		name      string
		params    filterParams
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "empty defaults to dataset bounds",
			params:    filterParams{},
			wantStart: opts.MinDate,
			wantEnd:   opts.MaxDate,
		},
		{
			name:      "start only",
			params:    filterParams{Start: "2024-01-20"},
			wantStart: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			wantEnd:   opts.MaxDate,
		},
		{
			name:      "end only",
			params:    filterParams{End: "2024-01-20"},
			wantStart: opts.MinDate,
			wantEnd:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "both explicit",
			params:    filterParams{Start: "2024-01-10", End: "2024-01-15"},
			wantStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "malformed start",
			params:  filterParams{Start: "20-01-2024"},
			wantErr: true,
		},
		{
			name:    "malformed end",
			params:  filterParams{End: "eventually"},
			wantErr: true,
		},
		{
			name:    "start after end",
			params:  filterParams{Start: "2024-02-01", End: "2024-01-01"},
			wantErr: true,
		},
		{
			name:    "start after dataset max",
			params:  filterParams{Start: "2024-03-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.params.resolve(opts)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve() failed: %v", err)
			}

			if !f.Start.Equal(tt.wantStart) {
				t.Errorf("expected start %v, got %v", tt.wantStart, f.Start)
			}
			if !f.End.Equal(tt.wantEnd) {
				t.Errorf("expected end %v, got %v", tt.wantEnd, f.End)
			}
		})
	}
}

// The categorical selection passes through untouched: an empty list
// means no restriction, unknown values simply match nothing.
func TestFilterParams_Resolve_Categorical(t *testing.T) {
	params := filterParams{
		ProductLines: []string{"Vintage Cars"},
		Countries:    []string{"Atlantis"},
	}

	f, err := params.resolve(testFilterOptions())
	if err != nil {
		t.Fatalf("resolve() failed: %v", err)
	}

	if len(f.ProductLines) != 1 || f.ProductLines[0] != "Vintage Cars" {
		t.Errorf("expected product line selection preserved, got %v", f.ProductLines)
	}
	if len(f.Countries) != 1 || f.Countries[0] != "Atlantis" {
		t.Errorf("expected unknown country preserved, got %v", f.Countries)
	}
	if f.Statuses != nil {
		t.Errorf("expected no status restriction, got %v", f.Statuses)
	}
}

func TestQueryFilters(t *testing.T) {
	q, err := url.ParseQuery("start=2024-01-01&end=2024-01-31&product_line=Vintage+Cars&product_line=Classic+Cars&country=USA&status=Shipped&combine=false")
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}

	params, combine, err := queryFilters(q)
	if err != nil {
		t.Fatalf("queryFilters() failed: %v", err)
	}

	if params.Start != "2024-01-01" || params.End != "2024-01-31" {
		t.Errorf("unexpected dates %q..%q", params.Start, params.End)
	}

	if len(params.ProductLines) != 2 {
		t.Errorf("expected 2 product lines, got %v", params.ProductLines)
	}

	if len(params.Countries) != 1 || params.Countries[0] != "USA" {
		t.Errorf("expected [USA], got %v", params.Countries)
	}

	if combine {
		t.Error("expected combine=false")
	}
}

func TestQueryFilters_CombineDefaults(t *testing.T) {
	params, combine, err := queryFilters(url.Values{})
	if err != nil {
		t.Fatalf("queryFilters() failed: %v", err)
	}

	if !combine {
		t.Error("expected combine to default to true")
	}

	if params.Start != "" || len(params.ProductLines) != 0 {
		t.Errorf("expected empty params, got %+v", params)
	}
}

func TestQueryFilters_BadCombine(t *testing.T) {
	q := url.Values{"combine": []string{"sideways"}}

	if _, _, err := queryFilters(q); err == nil {
		t.Error("expected error for bad combine value")
	}
}
