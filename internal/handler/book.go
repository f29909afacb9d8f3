package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	f := model.BookFilter{
		Genre:    c.QueryParam("genre"),
		Language: c.QueryParam("language"),
	}
	if inStockParam := c.QueryParam("inStock"); inStockParam != "" {
		inStock, err := strconv.ParseBool(inStockParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("inStock is invalid"))
		}
		f.InStock = inStock
	}

	books, err := h.svc.ListBooks(ctx, f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	book, err := h.svc.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	var req model.BookCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), bookUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if err := h.svc.DeleteBook(c.Request().Context(), bookUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
