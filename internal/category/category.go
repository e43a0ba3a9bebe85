package category

import (
	"time"
)

// Category is the single entity managed by this service. Timestamps are
// serialized as RFC 3339 strings, matching the dashboard contract.
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
	IsActive     bool      `json:"is_active"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Category) IsActiveCategory() bool {
	return c.IsActive
}

// NewCategory builds a fresh record from validated input. The caller is
// responsible for assigning the ID; product_count always starts at zero.
func NewCategory(input CreateCategoryDTO) Category {
	now := time.Now().UTC()
	return Category{
		Name:         input.Name,
		Description:  input.Description,
		Color:        input.Color,
		Icon:         input.Icon,
		IsActive:     input.IsActive,
		ProductCount: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Filter narrows list reads. A nil IsActive means "both states", an empty
// Search means "everything".
type Filter struct {
	IsActive *bool
	Search   string
}

func (f Filter) Matches(c Category) bool {
	return f.IsActive == nil || c.IsActive == *f.IsActive
}

// Repository is the single mutation path for category records. Absence of a
// record is reported through the envelope's success flag, never as an error;
// implementations simulate remote-call latency.
type Repository interface {
	List(filter Filter) []Category
	Page(filter Filter, page, limit int) ListEnvelope
	GetByID(id int64) CategoryEnvelope
	Create(input CreateCategoryDTO) CategoryEnvelope
	Update(id int64, input UpdateCategoryDTO) CategoryEnvelope
	Delete(id int64) CategoryEnvelope
}

// Cache is the slice of the client state store the service needs to keep the
// UI copy reconciled with repository envelopes.
type Cache interface {
	ReplaceAll(categories []Category)
	Put(c Category)
	Delete(id int64)
	SetLoading(loading bool)
	SetError(msg string)
	ClearError()
	State() StateSnapshot
}

// StateSnapshot is the read-only view of the client state store handed to the
// dashboard on bootstrap.
type StateSnapshot struct {
	Categories       []Category `json:"categories"`
	SelectedCategory *Category  `json:"selectedCategory"`
	IsLoading        bool       `json:"isLoading"`
	Error            *string    `json:"error"`
}
