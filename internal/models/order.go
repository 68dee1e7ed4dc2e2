package models

import "time"

// Order is one sales transaction row from the source dataset.
// OrderDate is normalized to midnight UTC; date filtering is calendar-based.
type Order struct {
	OrderNumber     int
	OrderLineNumber int
	OrderDate       time.Time
	Sales           float64
	QuantityOrdered int
	PriceEach       float64
	CustomerName    string
	ProductCode     string
	ProductLine     string
	City            string
	Country         string
	Status          string
	DealSize        string
}
