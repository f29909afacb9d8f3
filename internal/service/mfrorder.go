package service

import (
	"context"
	"time"

	"github.com/adenisov/bookstore-service/internal/model"
)

const defaultDeliveryDays = 14

func (s *Service) ListMfrOrders(ctx context.Context, f model.MfrOrderFilter) ([]model.MfrOrder, error) {
	return s.repo.ListMfrOrders(ctx, f)
}

func (s *Service) GetMfrOrder(ctx context.Context, mfrOrderUid string) (model.MfrOrder, error) {
	return s.repo.GetMfrOrder(ctx, mfrOrderUid)
}

func (s *Service) CreateMfrOrder(ctx context.Context, req model.MfrOrderCreateRequest) (model.MfrOrder, error) {
	expected := req.ExpectedDeliveryDate.Time
	if expected.IsZero() {
		expected = time.Now().AddDate(0, 0, defaultDeliveryDays)
	}
	order := model.MfrOrder{
		OrderNumber:          req.OrderNumber,
		SupplierName:         req.SupplierName,
		Status:               model.StatusPending,
		TotalCost:            req.TotalCost,
		OrderDate:            time.Now(),
		ExpectedDeliveryDate: expected,
	}
	return s.repo.CreateMfrOrder(ctx, order, req.BooksOrdered)
}

func (s *Service) UpdateMfrOrder(ctx context.Context, mfrOrderUid string, req model.MfrOrderUpdateRequest) (model.MfrOrder, error) {
	return s.repo.UpdateMfrOrder(ctx, mfrOrderUid, req)
}

func (s *Service) DeleteMfrOrder(ctx context.Context, mfrOrderUid string) error {
	return s.repo.DeleteMfrOrder(ctx, mfrOrderUid)
}
