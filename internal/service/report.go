package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/adenisov/bookstore-service/internal/model"
)

const (
	defaultTopGenresLimit = 5
	defaultTopBooksLimit  = 10
)

func (s *Service) DailySales(ctx context.Context, f model.ReportFilter) ([]model.DailySales, error) {
	return s.repo.DailySales(ctx, f)
}

func (s *Service) TopGenres(ctx context.Context, f model.ReportFilter, limit int) ([]model.GenreSales, error) {
	if limit <= 0 {
		limit = defaultTopGenresLimit
	}
	return s.repo.TopGenres(ctx, f, limit)
}

func (s *Service) TopBooks(ctx context.Context, f model.ReportFilter, limit int) ([]model.BookSales, error) {
	if limit <= 0 {
		limit = defaultTopBooksLimit
	}
	return s.repo.TopBooks(ctx, f, limit)
}

// SalesSummary fans the grouped cells of one scan out into the five
// facets, so they all describe the same filtered snapshot. An empty
// result set yields zero values and empty breakdowns.
func (s *Service) SalesSummary(ctx context.Context, f model.ReportFilter) (model.SalesSummary, error) {
	cells, err := s.repo.SummaryCells(ctx, f)
	if err != nil {
		return model.SalesSummary{}, err
	}

	summary := model.SalesSummary{
		SalesByType:   make([]model.TypeBreakdown, 0),
		SalesByStatus: make([]model.StatusBreakdown, 0),
	}
	byType := make(map[model.SaleType]*model.TypeBreakdown)
	byStatus := make(map[model.OrderStatus]*model.StatusBreakdown)

	for _, cell := range cells {
		summary.TotalRevenue += cell.Revenue
		summary.TotalOrders += cell.OrderCount
		summary.TotalItems += cell.ItemCount

		t := byType[cell.Type]
		if t == nil {
			t = &model.TypeBreakdown{Type: cell.Type}
			byType[cell.Type] = t
		}
		t.Count += cell.OrderCount
		t.Revenue += cell.Revenue

		st := byStatus[cell.Status]
		if st == nil {
			st = &model.StatusBreakdown{Status: cell.Status}
			byStatus[cell.Status] = st
		}
		st.Count += cell.OrderCount
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}
	for _, t := range byType {
		summary.SalesByType = append(summary.SalesByType, *t)
	}
	for _, st := range byStatus {
		summary.SalesByStatus = append(summary.SalesByStatus, *st)
	}
	sort.Slice(summary.SalesByType, func(i, j int) bool {
		return summary.SalesByType[i].Type < summary.SalesByType[j].Type
	})
	sort.Slice(summary.SalesByStatus, func(i, j int) bool {
		return summary.SalesByStatus[i].Status < summary.SalesByStatus[j].Status
	})
	return summary, nil
}

// SalesOverview fetches the dashboard facets concurrently.
func (s *Service) SalesOverview(ctx context.Context, f model.ReportFilter) (model.SalesOverview, error) {
	var overview model.SalesOverview

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		summary, err := s.SalesSummary(ctx, f)
		if err != nil {
			return err
		}
		overview.Summary = summary
		return nil
	})
	gg.Go(func() error {
		genres, err := s.repo.TopGenres(ctx, f, defaultTopGenresLimit)
		if err != nil {
			return err
		}
		overview.TopGenres = genres
		return nil
	})
	gg.Go(func() error {
		books, err := s.repo.TopBooks(ctx, f, defaultTopBooksLimit)
		if err != nil {
			return err
		}
		overview.TopBooks = books
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.SalesOverview{}, err
	}
	return overview, nil
}
