package avro_test

import (
	"crm-server/internal/shared_kernel/avro"
	"crm-server/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func stageChange() domain.RecordChange {
	return domain.RecordChange{
		ID:            "3f1c2a8e-0d4b-4a4e-9b7d-1c9e6f2a5b10",
		EntityType:    domain.EntityTypeDeal,
		RecordID:      "deal-1",
		OwnerID:       "owner-1",
		Action:        domain.ChangeActionStageChanged,
		PreviousStage: "lead",
		Stage:         "proposal",
		OccurredAt:    time.Date(2024, 3, 15, 10, 30, 0, 123000000, time.UTC),
	}
}

var _ = Describe("AvroCodec", func() {
	var codec *avro.AvroCodec

	BeforeEach(func() {
		var err error
		codec, err = avro.NewAvroCodec()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should round trip a stage change", func() {
		data, err := codec.Encode(stageChange())
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(stageChange()))
	})

	It("should keep empty stages empty", func() {
		change := domain.NewRecordChange(domain.EntityTypeContact, "contact-1", "owner-1", domain.ChangeActionCreated)

		data, err := codec.Encode(&change)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.(domain.RecordChange).Stage).To(BeEmpty())
		Expect(decoded.(domain.RecordChange).RecordID).To(Equal(domain.ID("contact-1")))
	})

	It("should truncate timestamps to milliseconds", func() {
		change := stageChange()
		change.OccurredAt = change.OccurredAt.Add(456 * time.Nanosecond)

		data, _ := codec.Encode(change)
		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.(domain.RecordChange).OccurredAt).To(Equal(stageChange().OccurredAt))
	})

	It("should reject other messages", func() {
		_, err := codec.Encode("not a change")
		Expect(err).To(MatchError(avro.ErrUnsupportedMessage))
	})

	It("should fail on truncated data", func() {
		data, _ := codec.Encode(stageChange())

		_, err := codec.Decode(data[:3])
		Expect(err).To(HaveOccurred())
	})
})
