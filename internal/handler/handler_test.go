package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/handler"
	service_mocks "github.com/adenisov/bookstore-service/internal/handler/mocks"
	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/pkg/validate"
)

const bookUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

func TestHandler_PlaceOrder(t *testing.T) {
	t.Parallel()

	type mockBehavior func(s *service_mocks.MockBookstoreService)

	okSale := model.Sale{
		SaleUid:    "0ca3fb1a-5a30-4b94-87a1-f41a45b02ae3",
		Type:       model.SaleTypeInstore,
		Status:     model.StatusReceived,
		TotalPrice: 21,
		OrderItems: []model.OrderItem{
			{BookUid: bookUid, Quantity: 2, Price: 10.5},
		},
		TotalItems: 2,
	}

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"type":"instore","paymentMethod":"cash","orderItems":[{"bookId":"` + bookUid + `","quantity":2}]}`,
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					PlaceOrder(gomock.Any(), model.PlaceOrderRequest{
						Type:          model.SaleTypeInstore,
						PaymentMethod: model.PaymentCash,
						OrderItems: []model.OrderItemRequest{
							{BookUid: bookUid, Quantity: 2},
						},
					}).
					Return(okSale, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "err. insufficient stock",
			body: `{"type":"instore","paymentMethod":"cash","orderItems":[{"bookId":"` + bookUid + `","quantity":9}]}`,
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					PlaceOrder(gomock.Any(), gomock.Any()).
					Return(model.Sale{}, &errs.InsufficientStockError{BookUid: bookUid, Requested: 9, Available: 2})
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"insufficient stock for book ` + bookUid + `: requested 9, available 2"}`,
		},
		{
			name: "err. online without shipping address",
			body: `{"type":"online","paymentMethod":"credit","orderItems":[{"bookId":"` + bookUid + `","quantity":1}]}`,
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					PlaceOrder(gomock.Any(), gomock.Any()).
					Return(model.Sale{}, errs.ErrShippingAddress)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"shipping address is required for online orders"}`,
		},
		{
			name:         "err. validation: empty items",
			body:         `{"type":"instore","paymentMethod":"cash","orderItems":[]}`,
			mockBehavior: func(s *service_mocks.MockBookstoreService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. validation: bad type",
			body:         `{"type":"wholesale","paymentMethod":"cash","orderItems":[{"bookId":"` + bookUid + `","quantity":1}]}`,
			mockBehavior: func(s *service_mocks.MockBookstoreService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			tt.mockBehavior(svc)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/sales", h.PlaceOrder)

			r := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewBufferString(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.expectedCode == http.StatusCreated {
				expected, err := json.Marshal(okSale)
				require.NoError(t, err)
				require.JSONEq(t, string(expected), w.Body.String())
			}
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()

	type mockBehavior func(s *service_mocks.MockBookstoreService)

	book := model.Book{
		BookUid:  bookUid,
		Title:    "Dune",
		Author:   "Frank Herbert",
		Genre:    "science fiction",
		Quantity: 3,
		Price:    10.5,
	}

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					GetBook(gomock.Any(), bookUid).
					Return(book, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "err. not found",
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					GetBook(gomock.Any(), bookUid).
					Return(model.Book{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
		{
			name: "err. internal",
			mockBehavior: func(s *service_mocks.MockBookstoreService) {
				s.EXPECT().
					GetBook(gomock.Any(), bookUid).
					Return(model.Book{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			tt.mockBehavior(svc)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books/:bookUid", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/books/"+bookUid, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.expectedCode == http.StatusOK {
				expected, err := json.Marshal(book)
				require.NoError(t, err)
				require.JSONEq(t, string(expected), w.Body.String())
			}
		})
	}
}

func TestHandler_SalesSummary(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookstoreService(c)
	svc.EXPECT().
		SalesSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f model.ReportFilter) (model.SalesSummary, error) {
			require.NotNil(t, f.StartDate)
			require.Equal(t, "2024-03-01", f.StartDate.Format("2006-01-02"))
			require.Equal(t, model.SaleTypeOnline, f.Type)
			return model.SalesSummary{
				SalesByType:   []model.TypeBreakdown{},
				SalesByStatus: []model.StatusBreakdown{},
			}, nil
		})
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/reports/summary", h.SalesSummary)

	r := httptest.NewRequest(http.MethodGet, "/reports/summary?startDate=2024-03-01&type=online", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"totalRevenue":0,"totalOrders":0,"totalItems":0,"averageOrderValue":0,"salesByType":[],"salesByStatus":[]}`,
		w.Body.String())
}

func TestHandler_SalesSummary_BadDate(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookstoreService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/reports/summary", h.SalesSummary)

	r := httptest.NewRequest(http.MethodGet, "/reports/summary?startDate=yesterday", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"startDate is invalid"}`, strings.Trim(w.Body.String(), "\n"))
}
