package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/internal/repository"
	repo_mocks "github.com/adenisov/bookstore-service/internal/repository/mocks"
	"github.com/adenisov/bookstore-service/internal/service"
)

func TestService_PlaceOrder(t *testing.T) {
	t.Parallel()

	const (
		bookUid  = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
		otherUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	)
	catalog := []model.Book{
		{ID: 1, BookUid: bookUid, Title: "Dune", Price: 10.50, Quantity: 5},
		{ID: 2, BookUid: otherUid, Title: "Hyperion", Price: 7.25, Quantity: 1},
	}

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		req          model.PlaceOrderRequest
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "prices are snapshot and lines aggregate per book",
			req: model.PlaceOrderRequest{
				Type:          model.SaleTypeInstore,
				PaymentMethod: model.PaymentCash,
				OrderItems: []model.OrderItemRequest{
					{BookUid: bookUid, Quantity: 2},
					{BookUid: otherUid, Quantity: 1},
					{BookUid: bookUid, Quantity: 1},
				},
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					GetBooksByUids(gomock.Any(), []string{bookUid, otherUid}).
					Return(catalog, nil)
				r.EXPECT().
					CreateSale(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale model.Sale, items []model.OrderItem) (string, []model.LowStock, error) {
						require.InDelta(t, 3*10.50+7.25, sale.TotalPrice, 1e-9)
						require.Len(t, items, 3)
						require.Equal(t, 10.50, items[0].Price)
						require.Equal(t, 7.25, items[1].Price)
						return "sale-uid", nil, nil
					})
				r.EXPECT().
					GetSale(gomock.Any(), "sale-uid").
					Return(model.Sale{SaleUid: "sale-uid"}, nil)
			},
		},
		{
			name: "unknown book rejects the whole order",
			req: model.PlaceOrderRequest{
				Type:          model.SaleTypeInstore,
				PaymentMethod: model.PaymentCash,
				OrderItems: []model.OrderItemRequest{
					{BookUid: "no-such-book", Quantity: 1},
				},
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					GetBooksByUids(gomock.Any(), []string{"no-such-book"}).
					Return(nil, nil)
			},
			wantErr: &errs.UnknownBookError{BookUid: "no-such-book"},
		},
		{
			name: "stock check runs against the per-book sum",
			req: model.PlaceOrderRequest{
				Type:          model.SaleTypeInstore,
				PaymentMethod: model.PaymentCredit,
				OrderItems: []model.OrderItemRequest{
					{BookUid: otherUid, Quantity: 1},
					{BookUid: otherUid, Quantity: 1},
				},
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					GetBooksByUids(gomock.Any(), []string{otherUid}).
					Return(catalog, nil)
			},
			wantErr: &errs.InsufficientStockError{BookUid: otherUid, Requested: 2, Available: 1},
		},
		{
			name: "online order requires a shipping address",
			req: model.PlaceOrderRequest{
				Type:          model.SaleTypeOnline,
				PaymentMethod: model.PaymentDebit,
				OrderItems: []model.OrderItemRequest{
					{BookUid: bookUid, Quantity: 1},
				},
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					GetBooksByUids(gomock.Any(), []string{bookUid}).
					Return(catalog, nil)
			},
			wantErr: errs.ErrShippingAddress,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)

			svc := service.NewService(repo, nil, zap.NewNop())
			sale, err := svc.PlaceOrder(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "sale-uid", sale.SaleUid)
		})
	}
}

// stockRepo is a minimal in-memory repository honoring the conditional
// decrement contract of CreateSale: a sale commits only if every line
// still fits the remaining stock.
type stockRepo struct {
	repository.Repository

	mu      sync.Mutex
	catalog map[string]model.Book
	sales   int
}

func newStockRepo(books ...model.Book) *stockRepo {
	catalog := make(map[string]model.Book, len(books))
	for _, b := range books {
		catalog[b.BookUid] = b
	}
	return &stockRepo{catalog: catalog}
}

func (r *stockRepo) GetBooksByUids(_ context.Context, bookUids []string) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	books := make([]model.Book, 0, len(bookUids))
	for _, uid := range bookUids {
		if b, ok := r.catalog[uid]; ok {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *stockRepo) CreateSale(_ context.Context, _ model.Sale, items []model.OrderItem) (string, []model.LowStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		book, ok := r.catalog[item.BookUid]
		if !ok {
			return "", nil, &errs.UnknownBookError{BookUid: item.BookUid}
		}
		if book.Quantity < item.Quantity {
			return "", nil, &errs.InsufficientStockError{
				BookUid:   item.BookUid,
				Requested: item.Quantity,
				Available: book.Quantity,
			}
		}
		book.Quantity -= item.Quantity
		r.catalog[item.BookUid] = book
	}
	r.sales++
	return "sale-uid", nil, nil
}

func (r *stockRepo) GetSale(_ context.Context, saleUid string) (model.Sale, error) {
	return model.Sale{SaleUid: saleUid}, nil
}

func TestService_PlaceOrder_NoOversellUnderContention(t *testing.T) {
	t.Parallel()

	const (
		bookUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
		stock   = 5
		orders  = 20
	)
	repo := newStockRepo(model.Book{ID: 1, BookUid: bookUid, Price: 10, Quantity: stock})
	svc := service.NewService(repo, nil, zap.NewNop())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceOrder(context.Background(), model.PlaceOrderRequest{
				Type:          model.SaleTypeInstore,
				PaymentMethod: model.PaymentCash,
				OrderItems: []model.OrderItemRequest{
					{BookUid: bookUid, Quantity: 1},
				},
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			var insufficient *errs.InsufficientStockError
			if errors.As(err, &insufficient) {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, stock, succeeded)
	require.Equal(t, orders-stock, rejected)
	require.Equal(t, stock, repo.sales)
	require.Equal(t, 0, repo.catalog[bookUid].Quantity)
}
