// Package store holds the dashboard-facing state container: a synchronous
// cache of categories plus a selection and transient loading/error flags.
// The category list and selection survive restarts through a durable
// key/value snapshot; the flags are request-scoped and never persisted.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danupratama/category-admin/internal/category"
)

// DefaultName is the key the snapshot is stored under.
const DefaultName = "category-store"

// Persistence is the opaque durable storage the snapshot goes to. Load
// returns (nil, nil) when no snapshot exists yet.
type Persistence interface {
	Load(name string) ([]byte, error)
	Save(name string, payload []byte) error
}

// IDSource assigns ids for records created directly on the store. The
// default is time-derived but strictly monotonic, so ids stay unique even
// when two adds land on the same millisecond.
type IDSource interface {
	Next() int64
}

type clockSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *clockSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

type snapshot struct {
	Categories       []category.Category `json:"categories"`
	SelectedCategory *category.Category  `json:"selectedCategory"`
}

type Store struct {
	mu         sync.RWMutex
	categories []category.Category
	selected   *category.Category
	isLoading  bool
	errMsg     *string

	name    string
	persist Persistence
	ids     IDSource
	matcher category.MatchStrategy
	logger  *slog.Logger
}

type Option func(*Store)

func WithName(name string) Option {
	return func(s *Store) { s.name = name }
}

func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// New builds an empty store. Persisted state is not loaded implicitly;
// callers decide when to Hydrate.
func New(persist Persistence, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		name:    DefaultName,
		persist: persist,
		ids:     &clockSequence{},
		matcher: category.SubstringMatch{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted snapshot into memory. It is an explicit
// lifecycle step: until it runs, the store starts empty even when a snapshot
// exists.
func (s *Store) Hydrate() error {
	payload, err := s.persist.Load(s.name)
	if err != nil {
		return fmt.Errorf("load store snapshot: %w", err)
	}
	if payload == nil {
		s.logger.Debug("no persisted snapshot", "store", s.name)
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode store snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = snap.Categories
	s.selected = snap.SelectedCategory

	s.logger.Info("hydrated store", "store", s.name, "categories", len(s.categories))
	return nil
}

// Add creates a record directly on the cache with a time-derived id and
// zeroed product count. Used when the dashboard works offline from the
// repository.
func (s *Store) Add(input category.CreateCategoryDTO) category.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := category.NewCategory(input)
	record.ID = s.ids.Next()
	s.categories = append(s.categories, record)

	s.flushLocked()
	return record
}

// Update merges the supplied fields onto the cached record. A missing id is
// a silent no-op.
func (s *Store) Update(id int64, input category.UpdateCategoryDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		input.Apply(&s.categories[i])
		if s.selected != nil && s.selected.ID == id {
			updated := s.categories[i]
			s.selected = &updated
		}
		s.flushLocked()
		return
	}
}

// Delete removes the cached record and clears the selection when it pointed
// at the removed entry.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
		s.flushLocked()
		return
	}
}

// Put inserts or replaces a record by id. This is the reconciliation path:
// records returned in repository envelopes land here unchanged.
func (s *Store) Put(c category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			if s.selected != nil && s.selected.ID == c.ID {
				s.selected = &c
			}
			s.flushLocked()
			return
		}
	}
	s.categories = append(s.categories, c)
	s.flushLocked()
}

// ReplaceAll overwrites the cached list wholesale, e.g. when seeding from a
// repository page.
func (s *Store) ReplaceAll(categories []category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append([]category.Category(nil), categories...)
	s.flushLocked()
}

// Select sets the current selection; nil clears it.
func (s *Store) Select(c *category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = c
	s.flushLocked()
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = &msg
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = nil
}

// ActiveOnly returns the cached records with is_active set.
func (s *Store) ActiveOnly() []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []category.Category
	for _, c := range s.categories {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active
}

// ByID looks up a cached record.
func (s *Store) ByID(id int64) (category.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return category.Category{}, false
}

// Search filters the cache by case-insensitive substring against name or
// description. A blank query returns the full cached list.
func (s *Store) Search(query string) []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(query) == "" {
		return append([]category.Category(nil), s.categories...)
	}
	return s.matcher.Match(s.categories, query)
}

// State returns a copy of the full store shape for the dashboard bootstrap.
func (s *Store) State() category.StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := category.StateSnapshot{
		Categories: append([]category.Category(nil), s.categories...),
		IsLoading:  s.isLoading,
	}
	if s.selected != nil {
		selected := *s.selected
		snap.SelectedCategory = &selected
	}
	if s.errMsg != nil {
		msg := *s.errMsg
		snap.Error = &msg
	}
	return snap
}

// flushLocked writes the durable snapshot after a mutation. Storage failures
// are logged, not propagated: the in-memory state is already consistent and
// the next mutation retries the write.
func (s *Store) flushLocked() {
	payload, err := json.Marshal(snapshot{
		Categories:       s.categories,
		SelectedCategory: s.selected,
	})
	if err != nil {
		s.logger.Error("encode store snapshot", "store", s.name, "error", err)
		return
	}

	if err := s.persist.Save(s.name, payload); err != nil {
		s.logger.Error("persist store snapshot", "store", s.name, "error", err)
	}
}
