package storage_test

import (
	"testing"

	"github.com/danupratama/category-admin/internal"
	"github.com/danupratama/category-admin/internal/storage"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

var _ = Describe("GormStore", func() {
	var (
		db *gorm.DB
		kv *storage.GormStore
	)

	BeforeEach(func() {
		var err error
		db, err = storage.Open(internal.DatabaseConfig{
			Driver:       "sqlite",
			Source:       ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		kv = storage.NewGormStore(db)
	})

	It("should round-trip a payload", func() {
		Expect(kv.Save("category-store", []byte(`{"categories":[]}`))).To(Succeed())

		payload, err := kv.Load("category-store")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal([]byte(`{"categories":[]}`)))
	})

	It("should return nil for a missing snapshot", func() {
		payload, err := kv.Load("does-not-exist")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(BeNil())
	})

	It("should upsert on repeated saves", func() {
		Expect(kv.Save("category-store", []byte(`v1`))).To(Succeed())
		Expect(kv.Save("category-store", []byte(`v2`))).To(Succeed())

		payload, err := kv.Load("category-store")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal([]byte(`v2`)))
	})

	It("should keep snapshots isolated by name", func() {
		Expect(kv.Save("a", []byte(`aaa`))).To(Succeed())
		Expect(kv.Save("b", []byte(`bbb`))).To(Succeed())

		payload, err := kv.Load("a")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal([]byte(`aaa`)))
	})

	It("should delete without error even when missing", func() {
		Expect(kv.Delete("missing")).To(Succeed())

		Expect(kv.Save("a", []byte(`aaa`))).To(Succeed())
		Expect(kv.Delete("a")).To(Succeed())

		payload, err := kv.Load("a")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(BeNil())
	})

	It("should reject an unsupported driver", func() {
		_, err := storage.Open(internal.DatabaseConfig{Driver: "oracle", Source: "x"})
		Expect(err).To(HaveOccurred())
	})
})
