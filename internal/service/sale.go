package service

import (
	"context"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (s *Service) ListSales(ctx context.Context, f model.ReportFilter) ([]model.Sale, error) {
	return s.repo.ListSales(ctx, f)
}

func (s *Service) GetSale(ctx context.Context, saleUid string) (model.Sale, error) {
	return s.repo.GetSale(ctx, saleUid)
}

func (s *Service) UpdateSale(ctx context.Context, saleUid string, req model.SaleUpdateRequest) (model.Sale, error) {
	return s.repo.UpdateSale(ctx, saleUid, req)
}

func (s *Service) DeleteSale(ctx context.Context, saleUid string) error {
	return s.repo.DeleteSale(ctx, saleUid)
}
