package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

type countingRoleRepo struct {
	stubRoleRepo
	listCalls int
}

func (r *countingRoleRepo) List(ctx context.Context) ([]string, error) {
	r.listCalls++
	return r.stubRoleRepo.List(ctx)
}

func TestRoleService_List_CachesWithinTTL(t *testing.T) {
	repo := &countingRoleRepo{stubRoleRepo: stubRoleRepo{roles: []string{"admin", "nurse"}}}
	svc := NewRoleService(repo, time.Minute, zerolog.Nop())

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached list differs: %v vs %v", first, second)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 store read, got %d", repo.listCalls)
	}
}

func TestRoleService_List_FallbackOnStoreError(t *testing.T) {
	repo := &countingRoleRepo{stubRoleRepo: stubRoleRepo{listErr: errors.New("store down")}}
	svc := NewRoleService(repo, time.Minute, zerolog.Nop())

	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !reflect.DeepEqual(roles, domain.FallbackRoles) {
		t.Fatalf("expected fallback role set, got %v", roles)
	}
}

func TestRoleService_List_FallbackOnEmptyStore(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{}, time.Minute, zerolog.Nop())

	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !reflect.DeepEqual(roles, domain.FallbackRoles) {
		t.Fatalf("expected fallback role set, got %v", roles)
	}
}

func TestRoleService_FallbackIsNotCached(t *testing.T) {
	repo := &countingRoleRepo{}
	svc := NewRoleService(repo, time.Minute, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Once the store has rows they take precedence over the fallback.
	repo.roles = []string{"admin", "custom"}
	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(roles, []string{"admin", "custom"}) {
		t.Fatalf("expected store roles, got %v", roles)
	}
}

func TestRoleService_WriteInvalidatesCache(t *testing.T) {
	repo := &countingRoleRepo{stubRoleRepo: stubRoleRepo{roles: []string{"admin"}}}
	svc := NewRoleService(repo, time.Hour, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if err := svc.Create(context.Background(), "  Radiology "); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list after create failed: %v", err)
	}
	if !reflect.DeepEqual(roles, []string{"admin", "radiology"}) {
		t.Fatalf("expected normalized new role visible, got %v", roles)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected cache invalidation to force a re-read, got %d calls", repo.listCalls)
	}
}

func TestRoleService_Contains(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{roles: []string{"admin", "nurse"}}, time.Minute, zerolog.Nop())

	ok, err := svc.Contains(context.Background(), "nurse")
	if err != nil || !ok {
		t.Fatalf("expected nurse to be valid, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Contains(context.Background(), "bogus")
	if err != nil || ok {
		t.Fatalf("expected bogus to be invalid, got ok=%v err=%v", ok, err)
	}
}

func TestRoleService_DeleteAdminRefused(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{roles: []string{"admin", "nurse"}}, time.Minute, zerolog.Nop())

	if err := svc.Delete(context.Background(), domain.RoleAdmin); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
