package category

import "time"

// SampleCategories returns the data set used to seed fresh repositories and
// store snapshots for development.
func SampleCategories() []Category {
	return []Category{
		{
			ID:           1,
			Name:         "Electronics",
			Description:  "Electronic devices and gadgets",
			Color:        "#3B82F6",
			Icon:         "smartphone",
			IsActive:     true,
			ProductCount: 15,
			CreatedAt:    time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Name:         "Furniture",
			Description:  "Home and office furniture",
			Color:        "#10B981",
			Icon:         "sofa",
			IsActive:     true,
			ProductCount: 8,
			CreatedAt:    time.Date(2023, 2, 20, 14, 15, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 10, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:           3,
			Name:         "Clothing",
			Description:  "Fashion and apparel",
			Color:        "#F59E0B",
			Icon:         "shirt",
			IsActive:     true,
			ProductCount: 25,
			CreatedAt:    time.Date(2023, 3, 10, 9, 45, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 5, 9, 45, 0, 0, time.UTC),
		},
		{
			ID:           4,
			Name:         "Books",
			Description:  "Books and educational materials",
			Color:        "#8B5CF6",
			Icon:         "book",
			IsActive:     true,
			ProductCount: 12,
			CreatedAt:    time.Date(2023, 4, 5, 16, 20, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 12, 16, 20, 0, 0, time.UTC),
		},
		{
			ID:           5,
			Name:         "Beauty Products",
			Description:  "Cosmetics and personal care",
			Color:        "#EC4899",
			Icon:         "sparkles",
			IsActive:     false,
			ProductCount: 0,
			CreatedAt:    time.Date(2023, 5, 12, 11, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, 12, 1, 11, 30, 0, 0, time.UTC),
		},
	}
}
