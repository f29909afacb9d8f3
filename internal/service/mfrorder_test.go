package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/model"
	repo_mocks "github.com/adenisov/bookstore-service/internal/repository/mocks"
	"github.com/adenisov/bookstore-service/internal/service"
)

func TestService_CreateMfrOrder(t *testing.T) {
	t.Parallel()

	const bookUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	req := model.MfrOrderCreateRequest{
		OrderNumber:  "PO-1001",
		SupplierName: "Ace Books",
		TotalCost:    120,
		BooksOrdered: []model.MfrOrderItemRequest{{BookUid: bookUid, Quantity: 10}},
	}

	t.Run("explicit delivery date is kept", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repo_mocks.NewMockRepository(ctrl)

		want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		withDate := req
		withDate.ExpectedDeliveryDate = model.Date{Time: want}

		repo.EXPECT().
			CreateMfrOrder(gomock.Any(), gomock.Any(), withDate.BooksOrdered).
			DoAndReturn(func(_ context.Context, order model.MfrOrder, _ []model.MfrOrderItemRequest) (model.MfrOrder, error) {
				require.Equal(t, want, order.ExpectedDeliveryDate)
				require.Equal(t, model.StatusPending, order.Status)
				require.Equal(t, "PO-1001", order.OrderNumber)
				return order, nil
			})

		svc := service.NewService(repo, nil, zap.NewNop())
		_, err := svc.CreateMfrOrder(context.Background(), withDate)
		require.NoError(t, err)
	})

	t.Run("omitted delivery date defaults two weeks out", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repo_mocks.NewMockRepository(ctrl)

		repo.EXPECT().
			CreateMfrOrder(gomock.Any(), gomock.Any(), req.BooksOrdered).
			DoAndReturn(func(_ context.Context, order model.MfrOrder, _ []model.MfrOrderItemRequest) (model.MfrOrder, error) {
				require.WithinDuration(t, time.Now().AddDate(0, 0, 14), order.ExpectedDeliveryDate, time.Minute)
				return order, nil
			})

		svc := service.NewService(repo, nil, zap.NewNop())
		_, err := svc.CreateMfrOrder(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestService_EnsureRestockDraft(t *testing.T) {
	t.Parallel()

	const bookUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

	tests := []struct {
		name         string
		book         model.Book
		pending      bool
		wantQuantity int // 0 means no draft expected
	}{
		{
			name:         "drafts up to twice the threshold",
			book:         model.Book{BookUid: bookUid, Publisher: "Tor", Quantity: 2, LowStockThreshold: 5},
			wantQuantity: 8,
		},
		{
			name:         "draft is never below one threshold",
			book:         model.Book{BookUid: bookUid, Publisher: "Tor", Quantity: 5, LowStockThreshold: 5},
			wantQuantity: 5,
		},
		{
			name: "stock above threshold needs no draft",
			book: model.Book{BookUid: bookUid, Publisher: "Tor", Quantity: 6, LowStockThreshold: 5},
		},
		{
			name:    "existing pending draft is not duplicated",
			book:    model.Book{BookUid: bookUid, Publisher: "Tor", Quantity: 2, LowStockThreshold: 5},
			pending: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repo_mocks.NewMockRepository(ctrl)

			repo.EXPECT().GetBook(gomock.Any(), bookUid).Return(tt.book, nil)
			if tt.book.Quantity <= tt.book.LowStockThreshold {
				repo.EXPECT().HasPendingMfrOrderForBook(gomock.Any(), bookUid).Return(tt.pending, nil)
			}
			if tt.wantQuantity > 0 {
				repo.EXPECT().
					CreateMfrOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order model.MfrOrder, items []model.MfrOrderItemRequest) (model.MfrOrder, error) {
						require.Len(t, items, 1)
						require.Equal(t, tt.wantQuantity, items[0].Quantity)
						require.Equal(t, "Tor", order.SupplierName)
						order.MfrOrderUid = "39cdbf95-5f5e-4e2a-9cbb-2e8a3e6cd9c1"
						return order, nil
					})
			}

			svc := service.NewService(repo, nil, zap.NewNop())
			require.NoError(t, svc.EnsureRestockDraft(context.Background(), bookUid))
		})
	}
}
