package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (h *Handler) PlaceOrder(c echo.Context) error {
	var req model.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sale, err := h.svc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sale)
}

func (h *Handler) ListSales(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sales, err := h.svc.ListSales(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *Handler) GetSale(c echo.Context) error {
	saleUid := c.Param("saleUid")
	sale, err := h.svc.GetSale(c.Request().Context(), saleUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sale)
}

func (h *Handler) UpdateSale(c echo.Context) error {
	saleUid := c.Param("saleUid")
	var req model.SaleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sale, err := h.svc.UpdateSale(c.Request().Context(), saleUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sale)
}

func (h *Handler) DeleteSale(c echo.Context) error {
	saleUid := c.Param("saleUid")
	if err := h.svc.DeleteSale(c.Request().Context(), saleUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseReportFilter reads the shared sale/report query params. Dates
// accept YYYY-MM-DD or RFC 3339.
func parseReportFilter(c echo.Context) (model.ReportFilter, error) {
	var f model.ReportFilter
	if startParam := c.QueryParam("startDate"); startParam != "" {
		start, err := parseDateParam(startParam)
		if err != nil {
			return f, errors.New("startDate is invalid")
		}
		f.StartDate = &start
	}
	if endParam := c.QueryParam("endDate"); endParam != "" {
		end, err := parseDateParam(endParam)
		if err != nil {
			return f, errors.New("endDate is invalid")
		}
		f.EndDate = &end
	}
	f.Type = model.SaleType(c.QueryParam("type"))
	f.Status = model.OrderStatus(c.QueryParam("status"))
	f.BookTitle = c.QueryParam("title")
	f.Genre = c.QueryParam("genre")
	f.CustomerUid = c.QueryParam("customerId")
	return f, nil
}

func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
