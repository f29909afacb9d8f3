package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (h *Handler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *Handler) GetEmployee(c echo.Context) error {
	employeeUid := c.Param("employeeUid")
	employee, err := h.svc.GetEmployee(c.Request().Context(), employeeUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	var req model.EmployeeUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	employee, err := h.svc.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, employee)
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	employeeUid := c.Param("employeeUid")
	var req model.EmployeeUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	employee, err := h.svc.UpdateEmployee(c.Request().Context(), employeeUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(c echo.Context) error {
	employeeUid := c.Param("employeeUid")
	if err := h.svc.DeleteEmployee(c.Request().Context(), employeeUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
