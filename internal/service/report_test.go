package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/model"
	repo_mocks "github.com/adenisov/bookstore-service/internal/repository/mocks"
	"github.com/adenisov/bookstore-service/internal/service"
)

func TestService_SalesSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []model.SummaryCell
		want  model.SalesSummary
	}{
		{
			name: "facets fan out from the same cells",
			cells: []model.SummaryCell{
				{Type: model.SaleTypeInstore, Status: model.StatusReceived, OrderCount: 3, Revenue: 60, ItemCount: 7},
				{Type: model.SaleTypeOnline, Status: model.StatusReceived, OrderCount: 1, Revenue: 25, ItemCount: 2},
				{Type: model.SaleTypeOnline, Status: model.StatusPending, OrderCount: 4, Revenue: 115, ItemCount: 9},
			},
			want: model.SalesSummary{
				TotalRevenue:      200,
				TotalOrders:       8,
				TotalItems:        18,
				AverageOrderValue: 25,
				SalesByType: []model.TypeBreakdown{
					{Type: model.SaleTypeInstore, Count: 3, Revenue: 60},
					{Type: model.SaleTypeOnline, Count: 5, Revenue: 140},
				},
				SalesByStatus: []model.StatusBreakdown{
					{Status: model.StatusPending, Count: 4},
					{Status: model.StatusReceived, Count: 4},
				},
			},
		},
		{
			name:  "empty set yields zero values and empty breakdowns",
			cells: nil,
			want: model.SalesSummary{
				SalesByType:   []model.TypeBreakdown{},
				SalesByStatus: []model.StatusBreakdown{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			repo.EXPECT().
				SummaryCells(gomock.Any(), model.ReportFilter{}).
				Return(tt.cells, nil)

			svc := service.NewService(repo, nil, zap.NewNop())
			got, err := svc.SalesSummary(context.Background(), model.ReportFilter{})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_TopLimitsDefaulted(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		TopGenres(gomock.Any(), model.ReportFilter{}, 5).
		Return([]model.GenreSales{}, nil)
	repo.EXPECT().
		TopBooks(gomock.Any(), model.ReportFilter{}, 10).
		Return([]model.BookSales{}, nil)
	repo.EXPECT().
		TopBooks(gomock.Any(), model.ReportFilter{}, 3).
		Return([]model.BookSales{}, nil)

	svc := service.NewService(repo, nil, zap.NewNop())
	_, err := svc.TopGenres(context.Background(), model.ReportFilter{}, 0)
	require.NoError(t, err)
	_, err = svc.TopBooks(context.Background(), model.ReportFilter{}, 0)
	require.NoError(t, err)
	_, err = svc.TopBooks(context.Background(), model.ReportFilter{}, 3)
	require.NoError(t, err)
}

func TestService_SalesOverview(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	cells := []model.SummaryCell{
		{Type: model.SaleTypeInstore, Status: model.StatusReceived, OrderCount: 2, Revenue: 40, ItemCount: 4},
	}
	genres := []model.GenreSales{{Genre: "fantasy", TotalSales: 4, Revenue: 40}}
	books := []model.BookSales{{BookUid: "b1", Title: "Dune", TotalSold: 4, Revenue: 40}}

	repo.EXPECT().SummaryCells(gomock.Any(), model.ReportFilter{}).Return(cells, nil)
	repo.EXPECT().TopGenres(gomock.Any(), model.ReportFilter{}, 5).Return(genres, nil)
	repo.EXPECT().TopBooks(gomock.Any(), model.ReportFilter{}, 10).Return(books, nil)

	svc := service.NewService(repo, nil, zap.NewNop())
	overview, err := svc.SalesOverview(context.Background(), model.ReportFilter{})
	require.NoError(t, err)
	require.Equal(t, genres, overview.TopGenres)
	require.Equal(t, books, overview.TopBooks)
	require.Equal(t, 40.0, overview.Summary.TotalRevenue)
	require.Equal(t, 2, overview.Summary.TotalOrders)
}
