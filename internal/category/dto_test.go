package category_test

import (
	"strings"

	"github.com/danupratama/category-admin/internal"
	"github.com/danupratama/category-admin/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func strPtr(s string) *string { return &s }

var _ = Describe("Category DTO validation", func() {
	valid := category.CreateCategoryDTO{
		Name:        "Toys",
		Description: "Toys and games here",
		Color:       "#EF4444",
		Icon:        "car",
		IsActive:    true,
	}

	Describe("CreateCategoryDTO", func() {
		It("should accept a valid payload", func() {
			Expect(valid.Validate()).To(Succeed())
		})

		It("should enforce the name length bounds", func() {
			dto := valid
			dto.Name = "T"
			Expect(dto.Validate()).NotTo(Succeed())

			dto.Name = strings.Repeat("x", 51)
			Expect(dto.Validate()).NotTo(Succeed())

			dto.Name = strings.Repeat("x", 50)
			Expect(dto.Validate()).To(Succeed())
		})

		It("should enforce the description length bounds", func() {
			dto := valid
			dto.Description = "too short"
			Expect(dto.Validate()).NotTo(Succeed())

			dto.Description = strings.Repeat("x", 201)
			Expect(dto.Validate()).NotTo(Succeed())

			dto.Description = strings.Repeat("x", 10)
			Expect(dto.Validate()).To(Succeed())
		})

		It("should require a #RRGGBB color", func() {
			dto := valid
			for _, bad := range []string{"EF4444", "#EF444", "#GG0000", "red", "#EF44441"} {
				dto.Color = bad
				Expect(dto.Validate()).NotTo(Succeed(), "color %q should be rejected", bad)
			}

			dto.Color = "#ef4444"
			Expect(dto.Validate()).To(Succeed(), "lowercase hex is valid")
		})

		It("should restrict icons to the supported set", func() {
			dto := valid
			dto.Icon = "rocket"
			err := dto.Validate()
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should carry the offending field in the error details", func() {
			dto := valid
			dto.Name = ""
			appErr, ok := internal.IsAppError(dto.Validate())
			Expect(ok).To(BeTrue())

			details, ok := appErr.Details.(internal.ValidationErrors)
			Expect(ok).To(BeTrue())
			Expect(details.Errors).To(HaveLen(1))
			Expect(details.Errors[0].Field).To(Equal("name"))
		})
	})

	Describe("UpdateCategoryDTO", func() {
		It("should accept an empty partial", func() {
			Expect(category.UpdateCategoryDTO{}.Validate()).To(Succeed())
		})

		It("should validate only the supplied fields", func() {
			dto := category.UpdateCategoryDTO{Name: strPtr("OK name")}
			Expect(dto.Validate()).To(Succeed())

			dto.Color = strPtr("nope")
			Expect(dto.Validate()).NotTo(Succeed())
		})

		It("should merge only supplied fields on Apply", func() {
			record := category.NewCategory(valid)
			record.ID = 7

			dto := category.UpdateCategoryDTO{Description: strPtr("A replacement description")}
			dto.Apply(&record)

			Expect(record.Name).To(Equal(valid.Name))
			Expect(record.Description).To(Equal("A replacement description"))
			Expect(record.ID).To(Equal(int64(7)))
			Expect(record.ProductCount).To(Equal(0))
		})
	})
})
