package domain_test

import (
	"crm-server/internal/shared_kernel/domain"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldValue", func() {
	Context("AsNumber", func() {
		DescribeTable("text values",
			func(raw string, expected float64, ok bool) {
				n, parsed := domain.TextValue(raw).AsNumber()
				Expect(parsed).To(Equal(ok))
				if ok {
					Expect(n).To(Equal(expected))
				}
			},
			Entry("integer", "150", 150.0, true),
			Entry("decimal with spaces", " 12.5 ", 12.5, true),
			Entry("exponent", "1e3", 1000.0, true),
			Entry("leading dot", ".5", 0.5, true),
			Entry("not available", "N/A", 0.0, false),
			Entry("hexadecimal", "0x10", 0.0, false),
			Entry("infinity", "Inf", 0.0, false),
			Entry("empty", "", 0.0, false),
		)

		It("should not read booleans as numbers", func() {
			_, ok := domain.BooleanValue(true).AsNumber()
			Expect(ok).To(BeFalse())
		})
	})

	Context("AsTime", func() {
		It("should parse a date only text as UTC midnight", func() {
			t, ok := domain.TextValue("2024-03-15").AsTime()
			Expect(ok).To(BeTrue())
			Expect(t).To(Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
		})

		It("should reject free text", func() {
			_, ok := domain.TextValue("next week").AsTime()
			Expect(ok).To(BeFalse())
		})

		It("should read text without an offset in the given location", func() {
			auckland, err := time.LoadLocation("Pacific/Auckland")
			Expect(err).NotTo(HaveOccurred())
			t, ok := domain.TextValue("2024-03-15T23:59:59").AsTimeIn(auckland)
			Expect(ok).To(BeTrue())
			Expect(t.Equal(time.Date(2024, 3, 15, 23, 59, 59, 0, auckland))).To(BeTrue())
		})

		It("should honour an explicit offset whatever the location", func() {
			auckland, err := time.LoadLocation("Pacific/Auckland")
			Expect(err).NotTo(HaveOccurred())
			t, ok := domain.TextValue("2024-03-15T10:00:00Z").AsTimeIn(auckland)
			Expect(ok).To(BeTrue())
			Expect(t.Equal(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))).To(BeTrue())
		})
	})

	Context("CoerceValue", func() {
		It("should turn numeric text into a number", func() {
			value, err := domain.CoerceValue(domain.FieldTypeNumber, domain.TextValue("42"), time.UTC)
			Expect(err).NotTo(HaveOccurred())
			Expect(value.Kind()).To(Equal(domain.ValueKindNumber))
			Expect(value.AsText()).To(Equal("42"))
		})

		It("should reject a non numeric value for a number field", func() {
			_, err := domain.CoerceValue(domain.FieldTypeNumber, domain.TextValue("N/A"), time.UTC)
			Expect(err).To(MatchError(domain.ErrInvalidFieldValue))
		})

		It("should normalise dates to the canonical layout", func() {
			value, err := domain.CoerceValue(domain.FieldTypeDate, domain.TextValue("2024-03-15"), time.UTC)
			Expect(err).NotTo(HaveOccurred())
			Expect(value.AsText()).To(Equal("2024-03-15T00:00:00.000Z"))
		})

		It("should store a date only value as local midnight", func() {
			newYork, err := time.LoadLocation("America/New_York")
			Expect(err).NotTo(HaveOccurred())
			value, err := domain.CoerceValue(domain.FieldTypeDate, domain.TextValue("2024-03-15"), newYork)
			Expect(err).NotTo(HaveOccurred())
			Expect(value.AsText()).To(Equal("2024-03-15T04:00:00.000Z"))
		})

		It("should accept boolean text", func() {
			value, err := domain.CoerceValue(domain.FieldTypeBoolean, domain.TextValue("TRUE"), time.UTC)
			Expect(err).NotTo(HaveOccurred())
			b, _ := value.AsBool()
			Expect(b).To(BeTrue())
		})

		It("should render any value as text", func() {
			value, err := domain.CoerceValue(domain.FieldTypeText, domain.NumberValue(7.25), time.UTC)
			Expect(err).NotTo(HaveOccurred())
			Expect(value.Kind()).To(Equal(domain.ValueKindText))
			Expect(value.AsText()).To(Equal("7.25"))
		})

		It("should keep the original value when tolerant coercion fails", func() {
			value := domain.TextValue("N/A").CoerceTo(domain.FieldTypeNumber, time.UTC)
			Expect(value.Kind()).To(Equal(domain.ValueKindText))
		})
	})

	Context("JSON", func() {
		It("should decode a bag with mixed values", func() {
			var bag domain.CustomFields
			err := json.Unmarshal([]byte(`{"budget": 1500, "vip": true, "region": "north", "meta": {"a": 1}}`), &bag)
			Expect(err).NotTo(HaveOccurred())
			Expect(bag["budget"].Kind()).To(Equal(domain.ValueKindNumber))
			Expect(bag["vip"].Kind()).To(Equal(domain.ValueKindBoolean))
			Expect(bag["region"].AsText()).To(Equal("north"))
			Expect(bag["meta"].AsText()).To(Equal(`{"a":1}`))
		})

		It("should encode values natively", func() {
			data, err := json.Marshal(domain.CustomFields{"budget": domain.NumberValue(10), "vip": domain.BooleanValue(false)})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(MatchJSON(`{"budget": 10, "vip": false}`))
		})
	})
})

var _ = Describe("CustomFields", func() {
	types := map[string]domain.FieldType{
		"budget": domain.FieldTypeNumber,
		"region": domain.FieldTypeText,
	}

	It("should reject keys without a definition", func() {
		_, err := domain.CustomFields{"unknown": domain.TextValue("x")}.Validate(types, time.UTC)
		Expect(err).To(MatchError(domain.ErrUnknownCustomField))
	})

	It("should coerce declared values", func() {
		bag, err := domain.CustomFields{"budget": domain.TextValue("12")}.Validate(types, time.UTC)
		Expect(err).NotTo(HaveOccurred())
		Expect(bag["budget"].Kind()).To(Equal(domain.ValueKindNumber))
	})

	It("should keep undeclared values when normalising", func() {
		bag := domain.CustomFields{"legacy": domain.TextValue("x"), "budget": domain.TextValue("N/A")}.Normalize(types, time.UTC)
		Expect(bag["legacy"].AsText()).To(Equal("x"))
		Expect(bag["budget"].Kind()).To(Equal(domain.ValueKindText))
	})
})

var _ = Describe("CustomFields patches", func() {
	types := map[string]domain.FieldType{"budget": domain.FieldTypeNumber}

	It("should let empty values clear undeclared keys", func() {
		bag, err := domain.CustomFields{"legacy": domain.TextValue("")}.ValidatePatch(types, time.UTC)
		Expect(err).NotTo(HaveOccurred())
		Expect(bag).To(HaveKey("legacy"))
	})

	It("should still validate declared values", func() {
		_, err := domain.CustomFields{"budget": domain.TextValue("N/A")}.ValidatePatch(types, time.UTC)
		Expect(err).To(MatchError(domain.ErrInvalidFieldValue))
	})
})
