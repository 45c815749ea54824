package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// CategoryHandler manages the module-scoped tag store.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns the tags of one module, e.g. GET /categories?module=expenses.
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("module"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{OK: true, Items: items})
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.service.Create(c.Request().Context(), req.Module, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, categoryItemResponse{OK: true, Item: item})
}

func (h *CategoryHandler) Rename(c echo.Context) error {
	var req renameCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.service.Rename(c.Request().Context(), req.ID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryItemResponse{OK: true, Item: item})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	var req deleteByIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
