// Package table implements the data-table state machine used by every
// role-scoped admin view: one generic controller parameterized by a loader
// and a search-text function, instead of a rewrite per role.
package table

import (
	"context"
	"strings"
	"sync"
)

// Loader fetches the full backing list for a table.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Controller holds list state and derives the visible page from it. Items
// are only ever replaced wholesale by Reload; filtering and pagination are
// pure derivations and never mutate the backing slice.
type Controller[T any] struct {
	mu         sync.Mutex
	loader     Loader[T]
	searchText func(T) string

	items    []T
	query    string
	page     int
	pageSize int

	// reqToken increases with every Reload; a response is applied only if no
	// newer request started while it was in flight.
	reqToken uint64
}

const defaultPageSize = 20

func NewController[T any](loader Loader[T], searchText func(T) string, pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Controller[T]{
		loader:     loader,
		searchText: searchText,
		page:       1,
		pageSize:   pageSize,
	}
}

// SetQuery updates the filter and resets to the first page.
func (c *Controller[T]) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	c.page = 1
}

// SetPage moves to page p, clamped to [1, TotalPages].
func (c *Controller[T]) SetPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.totalPagesLocked()
	if p < 1 {
		p = 1
	}
	if p > total {
		p = total
	}
	c.page = p
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

// totalPagesLocked is at least 1 so an empty table still has a current page.
func (c *Controller[T]) totalPagesLocked() int {
	n := len(c.filteredLocked())
	pages := (n + c.pageSize - 1) / c.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Filtered returns the items matching the current query.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

func (c *Controller[T]) filteredLocked() []T {
	if c.query == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}
	needle := strings.ToLower(c.query)
	var out []T
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(c.searchText(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// View returns the current page of the filtered items.
func (c *Controller[T]) View() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := (c.page - 1) * c.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Reload fetches the full list and replaces the backing items. If another
// Reload started while this one was in flight, the stale result is
// discarded so the table never flickers back to an older snapshot.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.reqToken++
	token := c.reqToken
	c.mu.Unlock()

	items, err := c.loader(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.reqToken {
		return nil
	}
	c.items = items
	c.page = 1
	return nil
}

// Mutate runs a create/update/delete operation and reloads on success. On
// failure the table state is left untouched so the caller can surface the
// message without losing the current view.
func (c *Controller[T]) Mutate(ctx context.Context, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	return c.Reload(ctx)
}
