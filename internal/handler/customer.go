package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (h *Handler) ListCustomers(c echo.Context) error {
	customers, err := h.svc.ListCustomers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c echo.Context) error {
	customerUid := c.Param("customerUid")
	customer, err := h.svc.GetCustomer(c.Request().Context(), customerUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req model.CustomerUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.svc.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	customerUid := c.Param("customerUid")
	var req model.CustomerUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.svc.UpdateCustomer(c.Request().Context(), customerUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	customerUid := c.Param("customerUid")
	if err := h.svc.DeleteCustomer(c.Request().Context(), customerUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
