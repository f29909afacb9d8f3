package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (h *Handler) ListMfrOrders(c echo.Context) error {
	f := model.MfrOrderFilter{
		SupplierName: c.QueryParam("supplierName"),
		Status:       model.OrderStatus(c.QueryParam("status")),
	}
	orders, err := h.svc.ListMfrOrders(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetMfrOrder(c echo.Context) error {
	mfrOrderUid := c.Param("mfrOrderUid")
	order, err := h.svc.GetMfrOrder(c.Request().Context(), mfrOrderUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateMfrOrder(c echo.Context) error {
	var req model.MfrOrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order, err := h.svc.CreateMfrOrder(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateMfrOrder(c echo.Context) error {
	mfrOrderUid := c.Param("mfrOrderUid")
	var req model.MfrOrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order, err := h.svc.UpdateMfrOrder(c.Request().Context(), mfrOrderUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteMfrOrder(c echo.Context) error {
	mfrOrderUid := c.Param("mfrOrderUid")
	if err := h.svc.DeleteMfrOrder(c.Request().Context(), mfrOrderUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
