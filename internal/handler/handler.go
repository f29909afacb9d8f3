package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/service"
	md "github.com/adenisov/bookstore-service/pkg/middleware"
	"github.com/adenisov/bookstore-service/pkg/validate"
)

type Handler struct {
	svc BookstoreService
	log *zap.Logger
}

func New(svc BookstoreService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	protected := api.Group("", md.JwtAuthentication)

	protected.GET("/books", h.ListBooks)
	protected.GET("/books/:bookUid", h.GetBook)
	protected.POST("/books", h.CreateBook)
	protected.PUT("/books/:bookUid", h.UpdateBook)
	protected.DELETE("/books/:bookUid", h.DeleteBook)

	protected.GET("/sales", h.ListSales)
	protected.GET("/sales/:saleUid", h.GetSale)
	protected.POST("/sales", h.PlaceOrder)
	protected.PUT("/sales/:saleUid", h.UpdateSale)
	protected.DELETE("/sales/:saleUid", h.DeleteSale)

	protected.GET("/reports/daily-sales", h.DailySales)
	protected.GET("/reports/top-genres", h.TopGenres)
	protected.GET("/reports/top-books", h.TopBooks)
	protected.GET("/reports/summary", h.SalesSummary)
	protected.GET("/reports/overview", h.SalesOverview)

	protected.GET("/users/me", h.Me)
	protected.GET("/users/me/profile", h.MyProfile)
	protected.GET("/users/:userUid", h.GetUser)
	protected.DELETE("/users/:userUid", h.DeleteUser)

	protected.GET("/customers", h.ListCustomers)
	protected.GET("/customers/:customerUid", h.GetCustomer)
	protected.POST("/customers", h.CreateCustomer)
	protected.PUT("/customers/:customerUid", h.UpdateCustomer)
	protected.DELETE("/customers/:customerUid", h.DeleteCustomer)

	protected.GET("/employees", h.ListEmployees)
	protected.GET("/employees/:employeeUid", h.GetEmployee)
	protected.POST("/employees", h.CreateEmployee)
	protected.PUT("/employees/:employeeUid", h.UpdateEmployee)
	protected.DELETE("/employees/:employeeUid", h.DeleteEmployee)

	protected.GET("/mfr-orders", h.ListMfrOrders)
	protected.GET("/mfr-orders/:mfrOrderUid", h.GetMfrOrder)
	protected.POST("/mfr-orders", h.CreateMfrOrder)
	protected.PUT("/mfr-orders/:mfrOrderUid", h.UpdateMfrOrder)
	protected.DELETE("/mfr-orders/:mfrOrderUid", h.DeleteMfrOrder)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto response codes.
func httpError(err error) *echo.HTTPError {
	var (
		unknownBook       *errs.UnknownBookError
		insufficientStock *errs.InsufficientStockError
	)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &insufficientStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &unknownBook):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrShippingAddress):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
