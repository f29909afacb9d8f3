package model

import "time"

// ReportFilter is the sparse filter shared by sales listing and every
// report. Absent fields impose no constraint.
type ReportFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Type        SaleType
	Status      OrderStatus
	BookTitle   string
	Genre       string
	CustomerUid string
}

type DailySales struct {
	Day        string  `json:"day" db:"day"`
	TotalSales float64 `json:"totalSales" db:"total_sales"`
	TotalItems int     `json:"totalItems" db:"total_items"`
	OrderCount int     `json:"orderCount" db:"order_count"`
}

type GenreSales struct {
	Genre      string  `json:"genre" db:"genre"`
	TotalSales int     `json:"totalSales" db:"total_sales"`
	Revenue    float64 `json:"revenue" db:"revenue"`
}

type BookSales struct {
	BookUid   string  `json:"bookId" db:"book_uid"`
	Title     string  `json:"title" db:"title"`
	Author    string  `json:"author" db:"author"`
	ISBN      string  `json:"isbn" db:"isbn"`
	TotalSold int     `json:"totalSold" db:"total_sold"`
	Revenue   float64 `json:"revenue" db:"revenue"`
}

// SummaryCell is one (type, status) group of the filtered order set.
// All summary facets are fanned out from these cells so every facet
// reflects the same snapshot.
type SummaryCell struct {
	Type       SaleType    `db:"type"`
	Status     OrderStatus `db:"status"`
	OrderCount int         `db:"order_count"`
	Revenue    float64     `db:"revenue"`
	ItemCount  int         `db:"item_count"`
}

type TypeBreakdown struct {
	Type    SaleType `json:"type"`
	Count   int      `json:"count"`
	Revenue float64  `json:"revenue"`
}

type StatusBreakdown struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

type SalesSummary struct {
	TotalRevenue      float64           `json:"totalRevenue"`
	TotalOrders       int               `json:"totalOrders"`
	TotalItems        int               `json:"totalItems"`
	AverageOrderValue float64           `json:"averageOrderValue"`
	SalesByType       []TypeBreakdown   `json:"salesByType"`
	SalesByStatus     []StatusBreakdown `json:"salesByStatus"`
}

// SalesOverview bundles the dashboard facets fetched concurrently.
type SalesOverview struct {
	Summary   SalesSummary `json:"summary"`
	TopGenres []GenreSales `json:"topGenres"`
	TopBooks  []BookSales  `json:"topBooks"`
}
