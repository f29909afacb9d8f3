package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type BookRepository interface {
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	GetBooksByUids(ctx context.Context, bookUids []string) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.BookCreateRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
}

type SaleRepository interface {
	CreateSale(ctx context.Context, sale model.Sale, items []model.OrderItem) (string, []model.LowStock, error)
	GetSale(ctx context.Context, saleUid string) (model.Sale, error)
	ListSales(ctx context.Context, f model.ReportFilter) ([]model.Sale, error)
	UpdateSale(ctx context.Context, saleUid string, req model.SaleUpdateRequest) (model.Sale, error)
	DeleteSale(ctx context.Context, saleUid string) error
}

type ReportRepository interface {
	DailySales(ctx context.Context, f model.ReportFilter) ([]model.DailySales, error)
	TopGenres(ctx context.Context, f model.ReportFilter, limit int) ([]model.GenreSales, error)
	TopBooks(ctx context.Context, f model.ReportFilter, limit int) ([]model.BookSales, error)
	SummaryCells(ctx context.Context, f model.ReportFilter) ([]model.SummaryCell, error)
}

type UserRepository interface {
	CreateUserWithProfile(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, userUid string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateLastLogin(ctx context.Context, userID int) error
	DeleteUserAndProfile(ctx context.Context, userUid string) error
	GetCustomerByID(ctx context.Context, id int) (model.Customer, error)
	GetEmployeeByID(ctx context.Context, id int) (model.Employee, error)
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, customerUid string) (model.Customer, error)
	CreateCustomer(ctx context.Context, c model.Customer) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customerUid string, req model.CustomerUpsertRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, customerUid string) error
}

type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, employeeUid string) (model.Employee, error)
	CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error)
	UpdateEmployee(ctx context.Context, employeeUid string, req model.EmployeeUpsertRequest) (model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeUid string) error
}

type MfrOrderRepository interface {
	ListMfrOrders(ctx context.Context, f model.MfrOrderFilter) ([]model.MfrOrder, error)
	GetMfrOrder(ctx context.Context, mfrOrderUid string) (model.MfrOrder, error)
	CreateMfrOrder(ctx context.Context, order model.MfrOrder, items []model.MfrOrderItemRequest) (model.MfrOrder, error)
	UpdateMfrOrder(ctx context.Context, mfrOrderUid string, req model.MfrOrderUpdateRequest) (model.MfrOrder, error)
	DeleteMfrOrder(ctx context.Context, mfrOrderUid string) error
	HasPendingMfrOrderForBook(ctx context.Context, bookUid string) (bool, error)
}

type Repository interface {
	BookRepository
	SaleRepository
	ReportRepository
	UserRepository
	CustomerRepository
	EmployeeRepository
	MfrOrderRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	salesTableName         = `sales`
	orderItemsTableName    = `order_items`
	usersTableName         = `users`
	customersTableName     = `customers`
	employeesTableName     = `employees`
	mfrOrdersTableName     = `mfr_orders`
	mfrOrderItemsTableName = `mfr_order_items`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// mapPgError converts unique violations to errs.ErrConflict so handlers
// can answer 409 instead of 500.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
