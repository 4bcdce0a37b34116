package async_test

import (
	"crm-server/internal/infra/async"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sequencer", func() {
	var sequencer *async.Sequencer

	BeforeEach(func() {
		sequencer = async.NewSequencer()
	})

	It("should supersede earlier versions", func() {
		first := sequencer.Next("contacts")
		second := sequencer.Next("contacts")

		Expect(second).To(BeNumerically(">", first))
		Expect(sequencer.IsCurrent("contacts", first)).To(BeFalse())
		Expect(sequencer.IsCurrent("contacts", second)).To(BeTrue())
	})

	It("should version keys independently", func() {
		contacts := sequencer.Next("contacts")
		_ = sequencer.Next("deals")

		Expect(sequencer.IsCurrent("contacts", contacts)).To(BeTrue())
	})

	It("should invalidate versions of a forgotten key", func() {
		version := sequencer.Next("contacts")

		sequencer.Forget("contacts")

		Expect(sequencer.IsCurrent("contacts", version)).To(BeFalse())
	})

	It("should not reissue a forgotten version when the key comes back", func() {
		version := sequencer.Next("contacts")
		sequencer.Forget("contacts")

		next := sequencer.Next("contacts")

		Expect(next).To(BeNumerically(">", version))
		Expect(sequencer.IsCurrent("contacts", version)).To(BeFalse())
		Expect(sequencer.IsCurrent("contacts", next)).To(BeTrue())
	})

	It("should hand out unique versions concurrently", func() {
		var wg sync.WaitGroup
		versions := make(chan uint64, 50)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				versions <- sequencer.Next("contacts")
			}()
		}
		wg.Wait()
		close(versions)

		seen := map[uint64]bool{}
		for v := range versions {
			seen[v] = true
		}
		Expect(seen).To(HaveLen(50))
		Expect(sequencer.IsCurrent("contacts", 50)).To(BeTrue())
	})
})
