package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/danupratama/category-admin/internal/category"
	"github.com/danupratama/category-admin/internal/category/memory"
	"github.com/danupratama/category-admin/internal/category/store"
	"github.com/danupratama/category-admin/internal/storage"
	"github.com/danupratama/category-admin/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		router  *chi.Mux
		slogger *slog.Logger
	)

	BeforeEach(func() {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&storage.StoreState{})).To(Succeed())

		stateStore := store.New(storage.NewGormStore(db), slogger)
		repo := memory.NewSeededRepository(slogger, memory.WithDelays(memory.Delays{}))
		service := category.NewService(repo, stateStore, slogger)
		handler := category.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Route("/api/v1", func(r chi.Router) {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", handler.ListCategories)
				cr.Post("/", handler.CreateCategory)
				cr.Get("/{id}", handler.GetCategory)
				cr.Patch("/{id}", handler.UpdateCategory)
				cr.Delete("/{id}", handler.DeleteCategory)
			})
			r.Get("/state", handler.GetState)
		})
	})

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("GET /categories", func() {
		It("should return the paginated envelope", func() {
			w := do(http.MethodGet, "/api/v1/categories?page=2&limit=2", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var env category.ListEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Success).To(BeTrue())
			Expect(env.TotalCategories).To(Equal(5))
			Expect(env.Offset).To(Equal(2))
			Expect(env.Limit).To(Equal(2))
			Expect(env.Categories).To(HaveLen(2))
			Expect(env.Categories[0].ID).To(Equal(int64(3)))
		})

		It("should apply search and activity filters", func() {
			w := do(http.MethodGet, "/api/v1/categories?search=books&is_active=true", "")

			var env category.ListEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Categories).To(HaveLen(1))
			Expect(env.Categories[0].Name).To(Equal("Books"))
		})

		It("should reject non-numeric pagination", func() {
			w := do(http.MethodGet, "/api/v1/categories?page=abc", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /categories/{id}", func() {
		It("should return the record", func() {
			w := do(http.MethodGet, "/api/v1/categories/1", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var env category.CategoryEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Success).To(BeTrue())
			Expect(env.Category.Name).To(Equal("Electronics"))
		})

		It("should answer 404 with a failure envelope for a missing id", func() {
			w := do(http.MethodGet, "/api/v1/categories/999", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))

			var env category.CategoryEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Success).To(BeFalse())
			Expect(env.Message).To(ContainSubstring("not found"))
		})

		It("should reject a non-numeric id", func() {
			w := do(http.MethodGet, "/api/v1/categories/abc", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /categories", func() {
		It("should create a record with the next id", func() {
			w := do(http.MethodPost, "/api/v1/categories",
				`{"name":"Toys","description":"Toys and games here","color":"#EF4444","icon":"car","is_active":true}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var env category.CategoryEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Success).To(BeTrue())
			Expect(env.Category.ID).To(Equal(int64(6)))
			Expect(env.Category.ProductCount).To(Equal(0))
		})

		It("should reject an invalid color", func() {
			w := do(http.MethodPost, "/api/v1/categories",
				`{"name":"Toys","description":"Toys and games here","color":"red","icon":"car","is_active":true}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("VALIDATION_FAILED"))
		})

		It("should reject payloads that try to set protected fields", func() {
			w := do(http.MethodPost, "/api/v1/categories",
				`{"name":"Toys","description":"Toys and games here","color":"#EF4444","icon":"car","is_active":true,"product_count":99}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PATCH /categories/{id}", func() {
		It("should merge the partial update", func() {
			w := do(http.MethodPatch, "/api/v1/categories/1", `{"name":"Gadgets"}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var env category.CategoryEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Category.Name).To(Equal("Gadgets"))
			Expect(env.Category.Description).To(Equal("Electronic devices and gadgets"))
		})

		It("should answer 404 for a missing id", func() {
			w := do(http.MethodPatch, "/api/v1/categories/999", `{"name":"Gadgets"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /categories/{id}", func() {
		It("should remove the record and return it", func() {
			w := do(http.MethodDelete, "/api/v1/categories/2", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var env category.CategoryEnvelope
			Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
			Expect(env.Category.Name).To(Equal("Furniture"))

			Expect(do(http.MethodGet, "/api/v1/categories/2", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /state", func() {
		It("should expose the cache after a list request", func() {
			do(http.MethodGet, "/api/v1/categories?limit=10", "")

			w := do(http.MethodGet, "/api/v1/state", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var snap category.StateSnapshot
			Expect(json.NewDecoder(w.Body).Decode(&snap)).To(Succeed())
			Expect(snap.Categories).To(HaveLen(5))
			Expect(snap.SelectedCategory).To(BeNil())
			Expect(snap.IsLoading).To(BeFalse())
			Expect(snap.Error).To(BeNil())
		})
	})
})
