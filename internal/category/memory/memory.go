// Package memory holds the in-process category repository. It stands in for
// a remote catalog service: every operation sleeps for a fixed latency before
// touching the record collection and answers with an envelope instead of an
// error for expected conditions.
package memory

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danupratama/category-admin/internal/category"
)

// Latency applied per operation class, mirroring the remote service this
// repository simulates.
type Delays struct {
	Read  time.Duration
	List  time.Duration
	Write time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Read:  500 * time.Millisecond,
		List:  800 * time.Millisecond,
		Write: 1000 * time.Millisecond,
	}
}

type Repository struct {
	mu      sync.RWMutex
	records []category.Category

	delays  Delays
	matcher category.MatchStrategy
	logger  *slog.Logger
}

type Option func(*Repository)

// WithDelays overrides the simulated latency; tests run with zero.
func WithDelays(d Delays) Option {
	return func(r *Repository) { r.delays = d }
}

// WithRecords seeds the collection with an initial record set.
func WithRecords(records []category.Category) Option {
	return func(r *Repository) { r.records = append([]category.Category(nil), records...) }
}

func NewRepository(logger *slog.Logger, opts ...Option) *Repository {
	r := &Repository{
		delays:  DefaultDelays(),
		matcher: category.FuzzyMatch{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSeededRepository returns a repository preloaded with the sample data set.
func NewSeededRepository(logger *slog.Logger, opts ...Option) *Repository {
	opts = append([]Option{WithRecords(category.SampleCategories())}, opts...)
	return NewRepository(logger, opts...)
}

// List returns records matching the filter: activity flag first, then fuzzy
// relevance against name and description. Without a search term the result
// keeps insertion order. Never fails; no match yields an empty slice.
func (r *Repository) List(filter category.Filter) []category.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(filter)
}

func (r *Repository) listLocked(filter category.Filter) []category.Category {
	filtered := make([]category.Category, 0, len(r.records))
	for _, c := range r.records {
		if filter.Matches(c) {
			filtered = append(filtered, c)
		}
	}

	if filter.Search != "" {
		filtered = r.matcher.Match(filtered, filter.Search)
	}
	return filtered
}

// Page slices the filtered list into [offset, offset+limit). Out-of-range
// pages yield an empty slice, not a failure; total counts the whole filtered
// set.
func (r *Repository) Page(filter category.Filter, page, limit int) category.ListEnvelope {
	time.Sleep(r.delays.List)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.listLocked(filter)
	total := len(all)
	offset := (page - 1) * limit

	var slice []category.Category
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		slice = append([]category.Category(nil), all[offset:end]...)
	} else {
		slice = []category.Category{}
	}

	r.logger.Debug("listed categories", "total", total, "offset", offset, "limit", limit)
	return category.NewListEnvelope(slice, total, offset, limit)
}

func (r *Repository) GetByID(id int64) category.CategoryEnvelope {
	time.Sleep(r.delays.Read)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.records {
		if c.ID == id {
			return category.FoundCategory(c, foundMessage(id))
		}
	}
	return category.NotFoundCategory(id)
}

// Create appends a new record. The assigned ID is max(existing)+1, starting
// from 1 on an empty collection, so it can never collide.
func (r *Repository) Create(input category.CreateCategoryDTO) category.CategoryEnvelope {
	time.Sleep(r.delays.Write)

	r.mu.Lock()
	defer r.mu.Unlock()

	record := category.NewCategory(input)
	record.ID = r.nextIDLocked()
	r.records = append(r.records, record)

	r.logger.Info("created category", "id", record.ID, "name", record.Name)
	return category.FoundCategory(record, "Category created successfully")
}

func (r *Repository) nextIDLocked() int64 {
	var max int64
	for _, c := range r.records {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// Update merges the supplied fields onto the stored record and refreshes
// updated_at. ID, created_at and product_count are untouched.
func (r *Repository) Update(id int64, input category.UpdateCategoryDTO) category.CategoryEnvelope {
	time.Sleep(r.delays.Write)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		input.Apply(&r.records[i])
		r.logger.Info("updated category", "id", id)
		return category.FoundCategory(r.records[i], "Category updated successfully")
	}
	return category.NotFoundCategory(id)
}

// Delete removes the record and returns it in the envelope so callers can
// offer an undo display.
func (r *Repository) Delete(id int64) category.CategoryEnvelope {
	time.Sleep(r.delays.Write)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		removed := r.records[i]
		r.records = append(r.records[:i], r.records[i+1:]...)
		r.logger.Info("deleted category", "id", id)
		return category.FoundCategory(removed, "Category deleted successfully")
	}
	return category.NotFoundCategory(id)
}

func foundMessage(id int64) string {
	return fmt.Sprintf("Category with ID %d found", id)
}
