package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gdcworld/clinic-backoffice/internal/api/middleware"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// The ledger handlers (expenses, C-arm procedures, dosu visits) share a
// shape: list by optional ?from=&to= date range, create stamped with the
// caller's account id, patch by id, delete by id.

func dateRange(c echo.Context) ports.DateRange {
	return ports.DateRange{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}
}

func callerID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxAccountID).(string)
	return id
}

// setField records a patch column only when the client sent the field.
func setField[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}

// ── Expenses ─────────────────────────────────────────────────────────────────

type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// List returns the expense ledger, optionally bounded by ?from=&to=.
//
// @Summary      List expense ledger rows
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200   {object}  expenseListResponse
// @Router       /expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), dateRange(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenseListResponse{OK: true, Items: items})
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), &domain.Expense{
		Date:      req.Date,
		Vendor:    req.Vendor,
		Category:  req.Category,
		Amount:    req.Amount,
		Memo:      req.Memo,
		CreatedBy: callerID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expenseItemResponse{OK: true, Item: item})
}

func (h *ExpenseHandler) Update(c echo.Context) error {
	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := map[string]any{}
	setField(fields, "date", req.Date)
	setField(fields, "vendor", req.Vendor)
	setField(fields, "category", req.Category)
	setField(fields, "amount", req.Amount)
	setField(fields, "memo", req.Memo)

	item, err := h.service.Update(c.Request().Context(), req.ID, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenseItemResponse{OK: true, Item: item})
}

func (h *ExpenseHandler) Delete(c echo.Context) error {
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

// ── C-arm procedures ─────────────────────────────────────────────────────────

type ProcedureHandler struct {
	service ports.ProcedureService
}

func NewProcedureHandler(service ports.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

func (h *ProcedureHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), dateRange(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, procedureListResponse{OK: true, Items: items})
}

func (h *ProcedureHandler) Create(c echo.Context) error {
	var req createProcedureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), &domain.Procedure{
		Date:      req.Date,
		Room:      req.Room,
		Operator:  req.Operator,
		Count:     req.Count,
		Memo:      req.Memo,
		CreatedBy: callerID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, procedureItemResponse{OK: true, Item: item})
}

func (h *ProcedureHandler) Update(c echo.Context) error {
	var req updateProcedureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := map[string]any{}
	setField(fields, "date", req.Date)
	setField(fields, "room", req.Room)
	setField(fields, "operator", req.Operator)
	setField(fields, "count", req.Count)
	setField(fields, "memo", req.Memo)

	item, err := h.service.Update(c.Request().Context(), req.ID, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, procedureItemResponse{OK: true, Item: item})
}

func (h *ProcedureHandler) Delete(c echo.Context) error {
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

// ── Dosu visits ──────────────────────────────────────────────────────────────

type VisitHandler struct {
	service ports.VisitService
}

func NewVisitHandler(service ports.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

func (h *VisitHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), dateRange(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitListResponse{OK: true, Items: items})
}

func (h *VisitHandler) Create(c echo.Context) error {
	var req createVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), &domain.Visit{
		Date:      req.Date,
		Therapist: req.Therapist,
		Patients:  req.Patients,
		Revenue:   req.Revenue,
		Memo:      req.Memo,
		CreatedBy: callerID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, visitItemResponse{OK: true, Item: item})
}

func (h *VisitHandler) Update(c echo.Context) error {
	var req updateVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := map[string]any{}
	setField(fields, "date", req.Date)
	setField(fields, "therapist", req.Therapist)
	setField(fields, "patients", req.Patients)
	setField(fields, "revenue", req.Revenue)
	setField(fields, "memo", req.Memo)

	item, err := h.service.Update(c.Request().Context(), req.ID, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitItemResponse{OK: true, Item: item})
}

func (h *VisitHandler) Delete(c echo.Context) error {
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

// Summary aggregates dosu visits per therapist over ?from=&to=.
//
// @Summary      Dosu visit/revenue summary
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200   {object}  visitSummaryResponse
// @Router       /visits/summary [get]
func (h *VisitHandler) Summary(c echo.Context) error {
	items, err := h.service.Summary(c.Request().Context(), dateRange(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitSummaryResponse{OK: true, Items: items})
}
