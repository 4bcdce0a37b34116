package async_test

import (
	"context"
	"crm-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	const topic async.BrokerTopicName = "deals.pipeline"

	var broker *async.LocalBroker
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	AfterEach(func() {
		broker.Stop()
	})

	Context("Publish", func() {
		It("should deliver to a single subscriber", func() {
			subscription, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "deal_moved", Value: "deal-1"})).To(Succeed())

			var received async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&received))
			Expect(received.Event).To(Equal("deal_moved"))
			Expect(received.Value).To(Equal("deal-1"))
		})

		It("should fan out to every subscriber", func() {
			first, _ := broker.Subscribe(topic)
			second, _ := broker.Subscribe(topic)

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "deal_moved"})).To(Succeed())

			Eventually(first.Receiver).Should(Receive())
			Eventually(second.Receiver).Should(Receive())
		})

		It("should fail for a topic nobody subscribed to", func() {
			err := broker.Publish(ctx, "deals.unknown", async.BrokerMessage{})
			Expect(err).To(MatchError(async.ErrTopicNotFound))
		})

		It("should still accept messages once every subscriber left", func() {
			subscription, _ := broker.Subscribe(topic)
			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(Succeed())
		})

		It("should not block when a subscriber leaves before reading", func() {
			slow, _ := broker.Subscribe(topic)
			fast, _ := broker.Subscribe(topic)

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "deal_moved"})).To(Succeed())
			Expect(broker.Unsubscribe(topic, slow)).To(Succeed())

			Eventually(fast.Receiver).Should(Receive())
		})
	})

	Context("Unsubscribe", func() {
		It("should close the receiver", func() {
			subscription, _ := broker.Subscribe(topic)

			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

			Eventually(subscription.Receiver).Should(BeClosed())
		})

		It("should fail for an unknown topic", func() {
			subscription, _ := broker.Subscribe(topic)

			err := broker.Unsubscribe("deals.unknown", subscription)
			Expect(err).To(MatchError(async.ErrTopicNotFound))
		})

		It("should fail for an unknown subscription", func() {
			_, _ = broker.Subscribe(topic)

			err := broker.Unsubscribe(topic, async.Subscription{ID: "missing"})
			Expect(err).To(MatchError(async.ErrSubscriptorNotFound))
		})

		It("should fail the second time", func() {
			subscription, _ := broker.Subscribe(topic)
			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

			err := broker.Unsubscribe(topic, subscription)
			Expect(err).To(MatchError(async.ErrSubscriptorNotFound))
		})
	})

	Context("Stop", func() {
		It("should close every receiver", func() {
			first, _ := broker.Subscribe(topic)
			second, _ := broker.Subscribe("contacts.changes")

			broker.Stop()

			Eventually(first.Receiver).Should(BeClosed())
			Eventually(second.Receiver).Should(BeClosed())
		})

		It("should forget the topics", func() {
			_, _ = broker.Subscribe(topic)

			broker.Stop()

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(MatchError(async.ErrTopicNotFound))
		})
	})
})
