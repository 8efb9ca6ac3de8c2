// Package store keeps paginated, in-memory caches of server records and mutates them
// locally after successful writes.
package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// Page is the pagination cursor of a collection.
type Page struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
}

func (p Page) HasMore() bool {
	return p.CurrentPage < p.LastPage
}

// NoFilters is the filter type of collections that are never filtered.
type NoFilters struct{}

// ListFunc fetches one page of records.
type ListFunc[T any, F any] func(ctx context.Context, filters F, page Page) ([]T, transport.PageMeta, error)

// GetFunc fetches a single record.
type GetFunc[T any] func(ctx context.Context, id int64) (T, error)

type collectionSpec[T models.Record, F any] struct {
	plural   string
	singular string
	defaults F
	list     ListFunc[T, F]
	get      GetFunc[T]
}

// Collection is the cache shared by every list backed store. All methods are safe for
// concurrent use; readers get copies.
type Collection[T models.Record, F any] struct {
	spec    collectionSpec[T, F]
	perPage int
	log     zerolog.Logger

	mu       sync.RWMutex
	items    []T
	current  *T
	page     Page
	filters  F
	err      string
	inflight int

	// Fetch sequence numbers. A response older than the newest applied one is dropped.
	listIssued, listApplied uint64
	oneIssued, oneApplied   uint64
}

func newCollection[T models.Record, F any](spec collectionSpec[T, F], s settings) *Collection[T, F] {
	c := &Collection[T, F]{
		spec:    spec,
		perPage: s.perPage,
		log:     s.logger.With().Str("store", spec.plural).Logger(),
	}
	c.resetLocked()
	return c
}

// FetchList loads the current page. filters, when non-nil, become the stored filters; a change
// returns to page 1 so later LoadMore calls page through the same result set. Page 1 replaces
// the cache and later pages append to it. Failures are recorded in Err, never returned.
func (c *Collection[T, F]) FetchList(ctx context.Context, filters *F, resetPage bool) {
	c.mu.Lock()
	if filters != nil && !reflect.DeepEqual(c.filters, *filters) {
		c.filters = *filters
		resetPage = true
	}
	if resetPage {
		c.page.CurrentPage = 1
	}
	f := c.filters
	page := c.page.CurrentPage
	c.mu.Unlock()

	c.fetch(ctx, f, page)
}

// LoadMore fetches the page after the current one when there is one.
func (c *Collection[T, F]) LoadMore(ctx context.Context) {
	c.mu.RLock()
	more := c.page.HasMore()
	f := c.filters
	next := c.page.CurrentPage + 1
	c.mu.RUnlock()

	if more {
		c.fetch(ctx, f, next)
	}
}

func (c *Collection[T, F]) fetch(ctx context.Context, f F, page int) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.listIssued++
	seq := c.listIssued
	c.inflight++
	c.err = ""
	req := Page{CurrentPage: page, PerPage: c.page.PerPage}
	c.mu.Unlock()

	items, meta, err := c.spec.list(ctx, f, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq <= c.listApplied {
		c.log.Debug().Uint64("seq", seq).Int("page", page).Msg("discarding stale page")
		c.keepSessionErrorLocked(err, "Failed to fetch "+c.spec.plural)
		return
	}
	c.listApplied = seq
	if err != nil {
		c.err = transport.Message(err, "Failed to fetch "+c.spec.plural)
		c.log.Err(err).Int("page", page).Msg("fetch failed")
		return
	}
	c.applyPageLocked(items, meta, req)
}

func (c *Collection[T, F]) applyPageLocked(items []T, meta transport.PageMeta, req Page) {
	current := meta.CurrentPage
	if current == 0 {
		current = req.CurrentPage
	}
	if current <= 1 {
		c.items = append([]T(nil), items...)
	} else {
		c.items = append(c.items, items...)
	}
	c.page.CurrentPage = current
	if meta.PerPage > 0 {
		c.page.PerPage = meta.PerPage
	}
	c.page.Total = meta.Total
	c.page.LastPage = max(meta.LastPage, 1)
}

// FetchOne loads id into the focused record. Failures are recorded in Err, never returned.
func (c *Collection[T, F]) FetchOne(ctx context.Context, id int64) {
	c.mu.Lock()
	c.oneIssued++
	seq := c.oneIssued
	c.inflight++
	c.err = ""
	c.mu.Unlock()

	rec, err := c.spec.get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq <= c.oneApplied {
		c.keepSessionErrorLocked(err, "Failed to fetch "+c.spec.singular)
		return
	}
	c.oneApplied = seq
	if err != nil {
		c.err = transport.Message(err, "Failed to fetch "+c.spec.singular)
		c.log.Err(err).Int64("id", id).Msg("fetch one failed")
		return
	}
	c.current = &rec
}

// keepSessionErrorLocked records an expired session even when the response itself is stale;
// expiry resets the cache, which would otherwise hide why the fetch failed.
func (c *Collection[T, F]) keepSessionErrorLocked(err error, fallback string) {
	if errors.Is(err, errors.ErrSessionExpired) {
		c.err = transport.Message(err, fallback)
	}
}

// Items returns a copy of the cached records in display order.
func (c *Collection[T, F]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T, F]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the cached record with id.
func (c *Collection[T, F]) Find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Current returns the focused record.
func (c *Collection[T, F]) Current() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		var zero T
		return zero, false
	}
	return *c.current, true
}

func (c *Collection[T, F]) Page() Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page
}

func (c *Collection[T, F]) HasMore() bool {
	return c.Page().HasMore()
}

func (c *Collection[T, F]) Total() int {
	return c.Page().Total
}

func (c *Collection[T, F]) clearErr() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Err is the message of the last failed action, empty after a success.
func (c *Collection[T, F]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Collection[T, F]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inflight > 0
}

func (c *Collection[T, F]) Filters() F {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters
}

// SetFilters replaces the filters and returns to page 1.
func (c *Collection[T, F]) SetFilters(f F) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
	c.page.CurrentPage = 1
}

// UpdateFilters edits the filters in place and returns to page 1.
func (c *Collection[T, F]) UpdateFilters(fn func(*F)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.filters)
	c.page.CurrentPage = 1
}

func (c *Collection[T, F]) ClearFilters() {
	c.SetFilters(c.spec.defaults)
}

func (c *Collection[T, F]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.CurrentPage = max(page, 1)
}

// SetPerPage changes the page size and returns to page 1.
func (c *Collection[T, F]) SetPerPage(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.PerPage = n
	c.page.CurrentPage = 1
}

// Reset restores the empty state. Responses to fetches issued before the reset are dropped.
func (c *Collection[T, F]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Collection[T, F]) resetLocked() {
	c.items = nil
	c.current = nil
	c.page = Page{CurrentPage: 1, PerPage: c.perPage, LastPage: 1}
	c.filters = c.spec.defaults
	c.err = ""
	c.listApplied = c.listIssued
	c.oneApplied = c.oneIssued
}

func (c *Collection[T, F]) indexLocked(id int64) int {
	for i, item := range c.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// track marks a write in flight and clears the previous error.
func (c *Collection[T, F]) track() func() {
	c.mu.Lock()
	c.inflight++
	c.err = ""
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.inflight--
		c.mu.Unlock()
	}
}

// fail records err (or fallback when the server sent no message) and returns err.
func (c *Collection[T, F]) fail(err error, fallback string) error {
	c.mu.Lock()
	c.err = transport.Message(err, fallback)
	c.mu.Unlock()
	c.log.Debug().Err(err).Msg(fallback)
	return err
}

func (c *Collection[T, F]) prepend(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{rec}, c.items...)
	c.page.Total++
}

func (c *Collection[T, F]) appendItem(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, rec)
	c.page.Total++
}

// replace swaps the cached and focused copies of rec. Records not in the cache are not added.
func (c *Collection[T, F]) replace(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(rec.GetID()); i >= 0 {
		c.items[i] = rec
	}
	if c.current != nil && (*c.current).GetID() == rec.GetID() {
		r := rec
		c.current = &r
	}
}

// patch edits the cached and focused copies of id in place.
func (c *Collection[T, F]) patch(id int64, fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		fn(&c.items[i])
	}
	if c.current != nil && (*c.current).GetID() == id {
		r := *c.current
		fn(&r)
		c.current = &r
	}
}

// remove drops id from the cache. Total only shrinks when the record was cached.
func (c *Collection[T, F]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	if c.page.Total > 0 {
		c.page.Total--
	}
	if c.current != nil && (*c.current).GetID() == id {
		c.current = nil
	}
	return true
}

func (c *Collection[T, F]) setCurrent(rec *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = rec
}

// mutate runs a write and applies its result to the cache on success.
func mutate[T models.Record, F any](c *Collection[T, F], fallback string, call func() (T, error), apply func(T)) (T, error) {
	done := c.track()
	defer done()

	rec, err := call()
	if err != nil {
		return rec, c.fail(err, fallback)
	}
	apply(rec)
	return rec, nil
}

// drop runs a delete and removes id from the cache on success.
func drop[T models.Record, F any](c *Collection[T, F], fallback string, id int64, call func() error) error {
	done := c.track()
	defer done()

	if err := call(); err != nil {
		return c.fail(err, fallback)
	}
	c.remove(id)
	return nil
}

func pageOf[T any](env *transport.PageEnvelope[T], err error) ([]T, transport.PageMeta, error) {
	if err != nil {
		return nil, transport.PageMeta{}, err
	}
	return env.Data, env.Meta, nil
}

// unpaged adapts a plain list endpoint to a single page.
func unpaged[T any](items []T, err error) ([]T, transport.PageMeta, error) {
	if err != nil {
		return nil, transport.PageMeta{}, err
	}
	return items, transport.PageMeta{CurrentPage: 1, Total: len(items), LastPage: 1}, nil
}

// errUnsupported answers FetchOne on collections whose records have no single-record endpoint.
func errUnsupported(plural string) error {
	return fmt.Errorf("%s cannot be fetched individually", plural)
}
