package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gdcworld/clinic-backoffice/internal/api/handler"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

type stubAccountService struct {
	createFn func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error)
	updateFn func(ctx context.Context, id string, patch ports.AccountPatch) (*domain.Account, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, role string) ([]domain.Account, error)
}

func (s *stubAccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *stubAccountService) Update(ctx context.Context, id string, patch ports.AccountPatch) (*domain.Account, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubAccountService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAccountService) List(ctx context.Context, role string) ([]domain.Account, error) {
	return s.listFn(ctx, role)
}

func TestAccountHandler_List_RoleFilterPassedThrough(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(ctx context.Context, role string) ([]domain.Account, error) {
			if role != "nurse" {
				t.Fatalf("expected role filter nurse, got %q", role)
			}
			return []domain.Account{{ID: "acc-1", Email: "n@clinic.kr", Role: "nurse"}}, nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodGet, "/accounts?role=nurse", "")
	invoke(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one item, got %v", resp["items"])
	}
}

func TestAccountHandler_Create_Success(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
			if input.Email != "new@clinic.kr" || input.Role != "physio" || input.Hospital != "main" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.IdempotencyKey != "req-7" {
				t.Fatalf("idempotency key not forwarded, got %q", input.IdempotencyKey)
			}
			return &domain.Account{ID: "acc-9", Email: input.Email, Role: input.Role}, nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/accounts",
		`{"email":"new@clinic.kr","password":"longenough","role":"physio","name":"Kim","hospital":"main"}`)
	c.Request().Header.Set("Idempotency-Key", "req-7")
	invoke(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	item, ok := resp["item"].(map[string]any)
	if !ok || item["id"] != "acc-9" {
		t.Fatalf("unexpected item payload: %+v", resp["item"])
	}
}

func TestAccountHandler_Create_ShortPasswordRejected(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/accounts",
		`{"email":"new@clinic.kr","password":"short","role":"physio","name":"Kim"}`)
	invoke(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_EmailConflict(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/accounts",
		`{"email":"dup@clinic.kr","password":"longenough","role":"physio","name":"Kim"}`)
	invoke(e, c, h.Create)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_UnknownRole(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.ErrRoleUnknown
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/accounts",
		`{"email":"x@clinic.kr","password":"longenough","role":"bogus","name":"Kim"}`)
	invoke(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Update_OnlySentFieldsPatched(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, id string, patch ports.AccountPatch) (*domain.Account, error) {
			if id != "acc-3" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Name == nil || *patch.Name != "New Name" {
				t.Fatalf("expected name patch, got %+v", patch)
			}
			if patch.Email != nil || patch.Password != nil || patch.Ward != nil {
				t.Fatalf("unexpected fields set: %+v", patch)
			}
			return &domain.Account{ID: id, Name: *patch.Name}, nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPatch, "/accounts", `{"id":"acc-3","name":"New Name"}`)
	invoke(e, c, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_Update_MissingID(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, id string, patch ports.AccountPatch) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodPatch, "/accounts", `{"name":"New Name"}`)
	invoke(e, c, h.Update)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Delete_NotFound(t *testing.T) {
	stub := &stubAccountService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrAccountNotFound
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodDelete, "/accounts", `{"id":"gone"}`)
	invoke(e, c, h.Delete)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_Delete_Success(t *testing.T) {
	stub := &stubAccountService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "acc-5" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := handler.NewAccountHandler(stub)

	e, c, rec := newTestContext(http.MethodDelete, "/accounts", `{"id":"acc-5"}`)
	invoke(e, c, h.Delete)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %v", resp["ok"])
	}
}
