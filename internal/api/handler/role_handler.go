package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// RoleHandler exposes the configurable role set.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List returns the current role set (store-backed, fallback when empty).
//
// @Summary      List valid roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rolesResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{OK: true, Items: items})
}

// Create adds a role to the configured set.
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Create(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okResponse{OK: true})
}

// Delete removes a role from the configured set.
func (h *RoleHandler) Delete(c echo.Context) error {
	var req deleteByNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Delete(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
