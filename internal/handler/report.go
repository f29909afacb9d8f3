package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) DailySales(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	daily, err := h.svc.DailySales(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, daily)
}

func (h *Handler) TopGenres(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	limit, err := parseLimitParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	genres, err := h.svc.TopGenres(c.Request().Context(), f, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) TopBooks(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	limit, err := parseLimitParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.svc.TopBooks(c.Request().Context(), f, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) SalesSummary(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	summary, err := h.svc.SalesSummary(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) SalesOverview(c echo.Context) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	overview, err := h.svc.SalesOverview(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, overview)
}

func parseLimitParam(c echo.Context) (int, error) {
	limitParam := c.QueryParam("limit")
	if limitParam == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 0 {
		return 0, errors.New("limit is invalid")
	}
	return limit, nil
}
