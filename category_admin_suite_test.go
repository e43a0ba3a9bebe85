package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCategoryAdmin(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CategoryAdmin Suite")
}
