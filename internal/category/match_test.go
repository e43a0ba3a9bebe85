package category_test

import (
	"github.com/danupratama/category-admin/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Match strategies", func() {
	records := []category.Category{
		{ID: 1, Name: "Electronics", Description: "Electronic devices and gadgets"},
		{ID: 2, Name: "Home Electronics", Description: "Appliances for the home"},
		{ID: 3, Name: "Books", Description: "Books and educational materials"},
		{ID: 4, Name: "Beauty Products", Description: "Cosmetics and personal care"},
	}

	names := func(matched []category.Category) []string {
		out := make([]string, len(matched))
		for i, c := range matched {
			out[i] = c.Name
		}
		return out
	}

	Describe("SubstringMatch", func() {
		matcher := category.SubstringMatch{}

		It("should keep input order and match name or description", func() {
			Expect(names(matcher.Match(records, "electronics"))).To(Equal([]string{"Electronics", "Home Electronics"}))
			Expect(names(matcher.Match(records, "cosmetics"))).To(Equal([]string{"Beauty Products"}))
		})

		It("should be case-insensitive", func() {
			Expect(matcher.Match(records, "BOOKS")).To(HaveLen(1))
		})

		It("should return everything for a blank query", func() {
			Expect(matcher.Match(records, "")).To(HaveLen(len(records)))
			Expect(matcher.Match(records, "  ")).To(HaveLen(len(records)))
		})

		It("should not mutate the input on a blank query", func() {
			result := matcher.Match(records, "")
			result[0].Name = "changed"
			Expect(records[0].Name).To(Equal("Electronics"))
		})
	})

	Describe("FuzzyMatch", func() {
		matcher := category.FuzzyMatch{}

		It("should rank an exact name match above a containing one", func() {
			matched := names(matcher.Match(records, "electronics"))
			Expect(matched).To(Equal([]string{"Electronics", "Home Electronics"}))
		})

		It("should rank a prefix above a word prefix", func() {
			matched := names(matcher.Match(records, "home"))
			Expect(matched[0]).To(Equal("Home Electronics"))
		})

		It("should match acronyms", func() {
			matched := names(matcher.Match(records, "bp"))
			Expect(matched).To(ContainElement("Beauty Products"))
		})

		It("should match in-order subsequences last", func() {
			matched := matcher.Match(records, "bks")
			Expect(names(matched)).To(ContainElement("Books"))
		})

		It("should drop records with no relation to the query", func() {
			Expect(matcher.Match(records, "xyzzy")).To(BeEmpty())
		})

		It("should keep input order within a rank tier", func() {
			tied := []category.Category{
				{ID: 1, Name: "Garden Tools", Description: ""},
				{ID: 2, Name: "Garden Furniture", Description: ""},
			}
			matched := matcher.Match(tied, "garden")
			Expect(names(matched)).To(Equal([]string{"Garden Tools", "Garden Furniture"}))
		})

		It("should return the same result for repeated queries", func() {
			Expect(matcher.Match(records, "elec")).To(Equal(matcher.Match(records, "elec")))
		})
	})
})
