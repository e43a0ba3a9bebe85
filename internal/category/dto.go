package category

import (
	"fmt"
	"regexp"
	"time"

	"github.com/danupratama/category-admin/internal"
)

// Icons the dashboard can render. Anything else is rejected at the boundary.
var AllowedIcons = []string{
	"smartphone",
	"sofa",
	"shirt",
	"book",
	"sparkles",
	"laptop",
	"car",
	"gamepad",
	"music",
	"camera",
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	NameMinLen        = 2
	NameMaxLen        = 50
	DescriptionMinLen = 10
	DescriptionMaxLen = 200
)

// CreateCategoryDTO is the writable field set for creating a category.
// ID, timestamps and product_count are never accepted from callers.
type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
}

func (dto CreateCategoryDTO) Validate() error {
	if err := validateName(dto.Name); err != nil {
		return err
	}
	if err := validateDescription(dto.Description); err != nil {
		return err
	}
	if err := validateColor(dto.Color); err != nil {
		return err
	}
	return validateIcon(dto.Icon)
}

// UpdateCategoryDTO carries a partial update; nil fields are left untouched.
type UpdateCategoryDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (dto UpdateCategoryDTO) Validate() error {
	if dto.Name != nil {
		if err := validateName(*dto.Name); err != nil {
			return err
		}
	}
	if dto.Description != nil {
		if err := validateDescription(*dto.Description); err != nil {
			return err
		}
	}
	if dto.Color != nil {
		if err := validateColor(*dto.Color); err != nil {
			return err
		}
	}
	if dto.Icon != nil {
		if err := validateIcon(*dto.Icon); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the supplied fields onto an existing record and refreshes
// updated_at. ID, created_at and product_count are preserved.
func (dto UpdateCategoryDTO) Apply(c *Category) {
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.Color != nil {
		c.Color = *dto.Color
	}
	if dto.Icon != nil {
		c.Icon = *dto.Icon
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}
	c.UpdatedAt = time.Now().UTC()
}

func validateName(name string) error {
	if len(name) < NameMinLen || len(name) > NameMaxLen {
		return internal.NewValidationFieldError("name",
			fmt.Sprintf("name must be between %d and %d characters", NameMinLen, NameMaxLen),
			internal.ErrCodeInvalidName)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) < DescriptionMinLen || len(description) > DescriptionMaxLen {
		return internal.NewValidationFieldError("description",
			fmt.Sprintf("description must be between %d and %d characters", DescriptionMinLen, DescriptionMaxLen),
			internal.ErrCodeInvalidDescription)
	}
	return nil
}

func validateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return internal.NewValidationFieldError("color",
			"color must be a hex code in #RRGGBB form",
			internal.ErrCodeInvalidColor)
	}
	return nil
}

func validateIcon(icon string) error {
	for _, allowed := range AllowedIcons {
		if icon == allowed {
			return nil
		}
	}
	return internal.NewValidationFieldError("icon",
		fmt.Sprintf("icon %q is not in the supported icon set", icon),
		internal.ErrCodeInvalidIcon)
}
