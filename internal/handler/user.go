package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/pkg/auth"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	info, ok := auth.FromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no auth context")
	}
	user, err := h.svc.GetUser(ctx, info.UserUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) MyProfile(c echo.Context) error {
	ctx := c.Request().Context()
	info, ok := auth.FromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no auth context")
	}
	profile, err := h.svc.GetProfile(ctx, info.UserUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetUser(c echo.Context) error {
	userUid := c.Param("userUid")
	user, err := h.svc.GetUser(c.Request().Context(), userUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	userUid := c.Param("userUid")
	if err := h.svc.DeleteUserAndProfile(c.Request().Context(), userUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
