package handler

import (
	"context"

	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.BookCreateRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (model.Sale, error)
	ListSales(ctx context.Context, f model.ReportFilter) ([]model.Sale, error)
	GetSale(ctx context.Context, saleUid string) (model.Sale, error)
	UpdateSale(ctx context.Context, saleUid string, req model.SaleUpdateRequest) (model.Sale, error)
	DeleteSale(ctx context.Context, saleUid string) error
}

type ReportService interface {
	DailySales(ctx context.Context, f model.ReportFilter) ([]model.DailySales, error)
	TopGenres(ctx context.Context, f model.ReportFilter, limit int) ([]model.GenreSales, error)
	TopBooks(ctx context.Context, f model.ReportFilter, limit int) ([]model.BookSales, error)
	SalesSummary(ctx context.Context, f model.ReportFilter) (model.SalesSummary, error)
	SalesOverview(ctx context.Context, f model.ReportFilter) (model.SalesOverview, error)
}

type UserService interface {
	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	GetUser(ctx context.Context, userUid string) (model.User, error)
	GetProfile(ctx context.Context, userUid string) (model.Profile, error)
	DeleteUserAndProfile(ctx context.Context, userUid string) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, customerUid string) (model.Customer, error)
	CreateCustomer(ctx context.Context, req model.CustomerUpsertRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customerUid string, req model.CustomerUpsertRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, customerUid string) error
}

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, employeeUid string) (model.Employee, error)
	CreateEmployee(ctx context.Context, req model.EmployeeUpsertRequest) (model.Employee, error)
	UpdateEmployee(ctx context.Context, employeeUid string, req model.EmployeeUpsertRequest) (model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeUid string) error
}

type MfrOrderService interface {
	ListMfrOrders(ctx context.Context, f model.MfrOrderFilter) ([]model.MfrOrder, error)
	GetMfrOrder(ctx context.Context, mfrOrderUid string) (model.MfrOrder, error)
	CreateMfrOrder(ctx context.Context, req model.MfrOrderCreateRequest) (model.MfrOrder, error)
	UpdateMfrOrder(ctx context.Context, mfrOrderUid string, req model.MfrOrderUpdateRequest) (model.MfrOrder, error)
	DeleteMfrOrder(ctx context.Context, mfrOrderUid string) error
}

type BookstoreService interface {
	CatalogService
	OrderService
	ReportService
	UserService
	CustomerService
	EmployeeService
	MfrOrderService
}

var _ BookstoreService = (*service.Service)(nil)
