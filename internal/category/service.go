package category

import (
	"log/slog"
)

// Service funnels every mutation through the repository and reconciles the
// client state cache from the returned envelope, so the two copies never
// drift apart. The repository stays the source of truth; the cache only ever
// sees records the repository handed back.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListCategories fetches a page from the repository and seeds the cache with
// the returned slice, the way the dashboard bootstraps its table.
func (s *Service) ListCategories(filter Filter, page, limit int) ListEnvelope {
	s.cache.ClearError()
	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	env := s.repo.Page(filter, page, limit)
	if env.Success {
		s.cache.ReplaceAll(env.Categories)
	}

	s.logger.Info("listed categories", "total", env.TotalCategories, "returned", len(env.Categories))
	return env
}

func (s *Service) GetCategory(id int64) CategoryEnvelope {
	s.cache.ClearError()
	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	env := s.repo.GetByID(id)
	if env.Success {
		s.cache.Put(*env.Category)
	} else {
		s.logger.Warn("category not found", "id", id)
	}
	return env
}

func (s *Service) CreateCategory(input CreateCategoryDTO) CategoryEnvelope {
	s.cache.ClearError()
	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	env := s.repo.Create(input)
	if env.Success {
		s.cache.Put(*env.Category)
		s.logger.Info("created category", "id", env.Category.ID, "name", env.Category.Name)
	} else {
		s.cache.SetError(env.Message)
	}
	return env
}

func (s *Service) UpdateCategory(id int64, input UpdateCategoryDTO) CategoryEnvelope {
	s.cache.ClearError()
	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	env := s.repo.Update(id, input)
	if env.Success {
		s.cache.Put(*env.Category)
		s.logger.Info("updated category", "id", id)
	} else {
		s.cache.SetError(env.Message)
		s.logger.Warn("update on missing category", "id", id)
	}
	return env
}

func (s *Service) DeleteCategory(id int64) CategoryEnvelope {
	s.cache.ClearError()
	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	env := s.repo.Delete(id)
	if env.Success {
		s.cache.Delete(id)
		s.logger.Info("deleted category", "id", id)
	} else {
		s.cache.SetError(env.Message)
		s.logger.Warn("delete on missing category", "id", id)
	}
	return env
}

// State exposes the cache snapshot for the dashboard bootstrap.
func (s *Service) State() StateSnapshot {
	return s.cache.State()
}
