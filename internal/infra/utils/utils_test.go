package utils_test

import (
	"crm-server/internal/infra/utils"
	"encoding/json"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ValidateEmail", func() {
	ginkgo.It("should accept a plain address", func() {
		gomega.Expect(utils.ValidateEmail("ana@example.co.nz")).To(gomega.Succeed())
	})

	ginkgo.It("should reject an address without a domain", func() {
		gomega.Expect(utils.ValidateEmail("ana@")).NotTo(gomega.Succeed())
	})

	ginkgo.It("should reject an empty address", func() {
		gomega.Expect(utils.ValidateEmail("")).NotTo(gomega.Succeed())
	})
})

var _ = ginkgo.Describe("Time", func() {
	ginkgo.It("should marshal as UTC with milliseconds", func() {
		auckland, err := time.LoadLocation("Pacific/Auckland")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		data, err := json.Marshal(utils.Time{Time: time.Date(2024, 3, 15, 9, 30, 0, 0, auckland)})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(data)).To(gomega.Equal(`"2024-03-14T20:30:00.000Z"`))
	})
})

var _ = ginkgo.Describe("Pointers", func() {
	ginkgo.It("should map empty values to nil", func() {
		gomega.Expect(utils.StringPtr("")).To(gomega.BeNil())
		gomega.Expect(utils.TimePtr(time.Time{})).To(gomega.BeNil())
	})

	ginkgo.It("should dereference nil to the zero value", func() {
		var missing *string
		gomega.Expect(utils.Deref(missing)).To(gomega.BeEmpty())
		gomega.Expect(utils.Deref(utils.StringPtr("won"))).To(gomega.Equal("won"))
	})
})
