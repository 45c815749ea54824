package table

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

func accountLoader(items ...domain.Account) Loader[domain.Account] {
	return func(context.Context) ([]domain.Account, error) {
		return items, nil
	}
}

func newLoadedController(t *testing.T, items ...domain.Account) *Controller[domain.Account] {
	t.Helper()
	c := NewController(accountLoader(items...), domain.Account.SearchText, 10)
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	return c
}

func TestController_FilterCaseInsensitiveSubstring(t *testing.T) {
	c := newLoadedController(t,
		domain.Account{Email: "a@x.com", Name: "Ahn"},
		domain.Account{Email: "b@x.com", Name: "Bae"},
	)

	c.SetQuery("a@")
	filtered := c.Filtered()
	if len(filtered) != 1 || filtered[0].Email != "a@x.com" {
		t.Fatalf("expected exactly a@x.com, got %+v", filtered)
	}

	c.SetQuery("A@X")
	if got := c.Filtered(); len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", got)
	}

	c.SetQuery("")
	if got := c.Filtered(); len(got) != 2 {
		t.Fatalf("empty query must match everything, got %d", len(got))
	}
}

func TestController_PaginationTwoPages(t *testing.T) {
	c := NewController(accountLoader(
		domain.Account{Email: "a@x.com"},
		domain.Account{Email: "b@x.com"},
	), domain.Account.SearchText, 1)
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if got := c.TotalPages(); got != 2 {
		t.Fatalf("expected 2 pages with pageSize=1, got %d", got)
	}
	if view := c.View(); len(view) != 1 || view[0].Email != "a@x.com" {
		t.Fatalf("unexpected page 1: %+v", view)
	}
	c.SetPage(2)
	if view := c.View(); len(view) != 1 || view[0].Email != "b@x.com" {
		t.Fatalf("unexpected page 2: %+v", view)
	}
}

func TestController_SetPageClamps(t *testing.T) {
	c := newLoadedController(t,
		domain.Account{Email: "a@x.com"},
		domain.Account{Email: "b@x.com"},
	)

	c.SetPage(99)
	if got := c.Page(); got != 1 {
		t.Fatalf("expected clamp to last page 1 (pageSize 10), got %d", got)
	}
	c.SetPage(-5)
	if got := c.Page(); got != 1 {
		t.Fatalf("expected clamp to first page, got %d", got)
	}
}

func TestController_SetQueryResetsPage(t *testing.T) {
	items := make([]domain.Account, 25)
	for i := range items {
		items[i] = domain.Account{Email: "user@x.com"}
	}
	c := NewController(accountLoader(items...), domain.Account.SearchText, 10)
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	c.SetPage(3)
	c.SetQuery("user")
	if got := c.Page(); got != 1 {
		t.Fatalf("expected query change to reset page, got %d", got)
	}
}

func TestController_FilterDoesNotMutateItems(t *testing.T) {
	c := newLoadedController(t,
		domain.Account{Email: "a@x.com"},
		domain.Account{Email: "b@x.com"},
	)

	c.SetQuery("a@")
	_ = c.Filtered()
	c.SetQuery("")
	if got := c.Filtered(); len(got) != 2 {
		t.Fatalf("filtering must not shrink the backing items, got %d", len(got))
	}
}

func TestController_StaleReloadDiscarded(t *testing.T) {
	block := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	loader := func(ctx context.Context) ([]domain.Account, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-block
			return []domain.Account{{Email: "stale@x.com"}}, nil
		}
		return []domain.Account{{Email: "fresh@x.com"}}, nil
	}

	c := NewController(loader, domain.Account.SearchText, 10)

	done := make(chan error)
	go func() { done <- c.Reload(context.Background()) }()

	// Wait until the first reload is in flight, then run a newer one.
	for {
		mu.Lock()
		started := calls == 1
		mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("second reload failed: %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first reload failed: %v", err)
	}

	items := c.Filtered()
	if len(items) != 1 || items[0].Email != "fresh@x.com" {
		t.Fatalf("stale response applied, got %+v", items)
	}
}

func TestController_MutateFailureLeavesState(t *testing.T) {
	c := newLoadedController(t, domain.Account{Email: "a@x.com"})

	err := c.Mutate(context.Background(), func(context.Context) error {
		return errors.New("server said no")
	})
	if err == nil {
		t.Fatalf("expected error from failed mutation")
	}
	if got := c.Filtered(); len(got) != 1 || got[0].Email != "a@x.com" {
		t.Fatalf("failed mutation must not touch state, got %+v", got)
	}
}

func TestSchema_SearchTextScopedToRole(t *testing.T) {
	account := domain.Account{
		Email: "n@x.com",
		Name:  "Nurse Lee",
		Ward:  "3F",
		Area:  "CT",
	}

	nurse := RoleSchemas["nurse"]
	if got := nurse.SearchText(account); !strings.Contains(got, "3F") {
		t.Fatalf("nurse schema should index ward, got %q", got)
	}
	if got := nurse.SearchText(account); strings.Contains(got, "CT") {
		t.Fatalf("nurse schema should not index radiology area, got %q", got)
	}
}
