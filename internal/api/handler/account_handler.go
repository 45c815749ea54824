package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gdcworld/clinic-backoffice/internal/api/metrics"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// AccountHandler serves the role-scoped staff account CRUD.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List returns every account, optionally filtered by role.
//
// @Summary      List staff accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {object}  accountListResponse
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountListResponse{OK: true, Items: items})
}

// Create registers a new staff account.
//
// @Summary      Create a staff account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replay guard for retried submissions"
// @Param        body             body      createAccountRequest  true   "Account details"
// @Success      201              {object}  accountItemResponse
// @Failure      400              {object}  map[string]any
// @Failure      409              {object}  map[string]any
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateAccountInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Name:           req.Name,
		Phone:          req.Phone,
		Status:         req.Status,
		Hospital:       req.Hospital,
		WorkStatus:     req.WorkStatus,
		AdminType:      req.AdminType,
		Ward:           req.Ward,
		License:        req.License,
		Branch:         req.Branch,
		Area:           req.Area,
		Position:       req.Position,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.AccountMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, accountItemResponse{OK: true, Item: item})
}

// Update applies a partial patch to an account.
//
// @Summary      Update a staff account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "Partial patch, id required"
// @Success      200   {object}  accountItemResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /accounts [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Update(c.Request().Context(), req.ID, ports.AccountPatch{
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Name:       req.Name,
		Phone:      req.Phone,
		Status:     req.Status,
		Hospital:   req.Hospital,
		WorkStatus: req.WorkStatus,
		AdminType:  req.AdminType,
		Ward:       req.Ward,
		License:    req.License,
		Branch:     req.Branch,
		Area:       req.Area,
		Position:   req.Position,
	})
	if err != nil {
		return err
	}

	metrics.AccountMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, accountItemResponse{OK: true, Item: item})
}

// Delete hard-deletes an account by id.
//
// @Summary      Delete a staff account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteByIDRequest  true  "Account id"
// @Success      200   {object}  okResponse
// @Failure      404   {object}  map[string]any
// @Router       /accounts [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
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

	metrics.AccountMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
