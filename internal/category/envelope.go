package category

import (
	"fmt"
	"time"
)

// Envelope is the response wrapper every repository operation returns.
// Expected absence is reported through Success=false and a message rather
// than an error value.
type Envelope struct {
	Success bool   `json:"success"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// CategoryEnvelope wraps single-record responses.
type CategoryEnvelope struct {
	Envelope
	Category *Category `json:"category,omitempty"`
}

// ListEnvelope wraps paginated list responses. TotalCategories counts the
// filtered set before the page slice is taken.
type ListEnvelope struct {
	Envelope
	TotalCategories int        `json:"total_categories"`
	Offset          int        `json:"offset"`
	Limit           int        `json:"limit"`
	Categories      []Category `json:"categories"`
}

func newEnvelope(success bool, message string) Envelope {
	return Envelope{
		Success: success,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Message: message,
	}
}

func FoundCategory(c Category, message string) CategoryEnvelope {
	return CategoryEnvelope{
		Envelope: newEnvelope(true, message),
		Category: &c,
	}
}

func NotFoundCategory(id int64) CategoryEnvelope {
	return CategoryEnvelope{
		Envelope: newEnvelope(false, fmt.Sprintf("Category with ID %d not found", id)),
	}
}

func NewListEnvelope(page []Category, total, offset, limit int) ListEnvelope {
	return ListEnvelope{
		Envelope:        newEnvelope(true, "Categories retrieved successfully"),
		TotalCategories: total,
		Offset:          offset,
		Limit:           limit,
		Categories:      page,
	}
}
